package preview

// ClientScript wires the gallery page to the server. It forwards events on
// elements marked data-on-<event> to /ws, drives the Swipe hook, and applies
// dismiss and show messages from the server.
const ClientScript = `
(function() {
    'use strict';

    var ws = null;
    var queue = [];
    var reconnectDelay = 1000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            reconnectDelay = 1000;
            while (queue.length) ws.send(queue.shift());
        };

        ws.onmessage = function(event) {
            var msg;
            try { msg = JSON.parse(event.data); } catch (e) { return; }
            switch (msg.type) {
            case 'dismiss':
                var el = (msg.hid && document.querySelector('[data-hid="' + msg.hid + '"]')) ||
                    (msg.id && document.getElementById(msg.id));
                if (el) close(el);
                break;
            case 'show':
                var viewport = document.getElementById('toast-viewport');
                if (viewport && msg.html) {
                    viewport.insertAdjacentHTML('afterbegin', msg.html);
                    bindSwipe(viewport.firstElementChild);
                }
                break;
            case 'error':
                console.warn('[toastui]', msg.error);
                break;
            }
        };

        ws.onclose = function() {
            setTimeout(connect, reconnectDelay);
            reconnectDelay = Math.min(reconnectDelay * 2, 30000);
        };
    }

    function send(hid, name, data) {
        var payload = JSON.stringify({hid: hid, event: name, data: data || {}});
        if (ws && ws.readyState === WebSocket.OPEN) ws.send(payload);
        else queue.push(payload);
    }

    function close(el) {
        el.setAttribute('data-state', 'closed');
        setTimeout(function() { el.remove(); }, 200);
    }

    document.addEventListener('click', function(e) {
        var target = e.target.closest('[data-hid][data-on-click]');
        if (target) send(target.getAttribute('data-hid'), 'click');

        var closer = e.target.closest('[toast-close]');
        if (closer && !closer.hasAttribute('data-hid')) {
            var root = closer.closest('[data-state]');
            if (root) close(root);
        }
    });

    function bindSwipe(el) {
        if (!el || el.getAttribute('data-hook') !== 'Swipe' || el._swipe) return;
        el._swipe = true;

        var cfg = {};
        try { cfg = JSON.parse(el.getAttribute('data-hook-config') || '{}'); } catch (e) {}
        var horizontal = cfg.direction !== 'up' && cfg.direction !== 'down';
        var sign = (cfg.direction === 'left' || cfg.direction === 'up') ? -1 : 1;
        var threshold = cfg.threshold || 50;
        var start = null;

        el.addEventListener('pointerdown', function(e) {
            if (e.target.closest('button')) return;
            start = {x: e.clientX, y: e.clientY};
            el.setPointerCapture(e.pointerId);
        });

        el.addEventListener('pointermove', function(e) {
            if (!start) return;
            var dx = horizontal ? Math.max(0, sign * (e.clientX - start.x)) * sign : 0;
            var dy = horizontal ? 0 : Math.max(0, sign * (e.clientY - start.y)) * sign;
            el.setAttribute('data-swipe', 'move');
            el.style.setProperty('--radix-toast-swipe-move-x', dx + 'px');
            el.style.setProperty('--radix-toast-swipe-move-y', dy + 'px');
        });

        function release(e) {
            if (!start) return;
            var delta = horizontal ? e.clientX - start.x : e.clientY - start.y;
            start = null;
            el.style.removeProperty('--radix-toast-swipe-move-x');
            el.style.removeProperty('--radix-toast-swipe-move-y');
            if (sign * delta >= threshold) {
                el.setAttribute('data-swipe', 'end');
                el.style.setProperty(horizontal ? '--radix-toast-swipe-end-x' : '--radix-toast-swipe-end-y', delta + 'px');
                if (el.hasAttribute('data-on-swipeend')) send(el.getAttribute('data-hid'), 'swipeend', {delta: delta});
                else close(el);
            } else {
                el.setAttribute('data-swipe', 'cancel');
            }
        }
        el.addEventListener('pointerup', release);
        el.addEventListener('pointercancel', release);
    }

    document.querySelectorAll('[data-hook="Swipe"]').forEach(bindSwipe);
    connect();
})();
`
