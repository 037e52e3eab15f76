package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// ReloadPath is the websocket endpoint browsers connect to.
	ReloadPath = "/_htmlbuilder/reload"

	// ScriptPath serves ClientScript.
	ScriptPath = "/_htmlbuilder/reload.js"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

// writeWait bounds a single message write to a preview page.
const writeWait = 5 * time.Second

// ReloadHub tracks connected preview pages and broadcasts reload messages.
type ReloadHub struct {
	mu       sync.Mutex
	clients  map[*reloadClient]struct{}
	closed   bool
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// reloadClient serializes writes to one connection. gorilla/websocket allows
// a single concurrent writer, and Close may run while a broadcast is sending.
type reloadClient struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

func (c *reloadClient) send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return websocket.ErrCloseSent
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// close sends a close frame and closes the connection. It is idempotent.
func (c *reloadClient) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	c.conn.Close()
}

// NewReloadHub creates a hub. A nil logger uses slog.Default().
func NewReloadHub(logger *slog.Logger) *ReloadHub {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadHub{
		clients: make(map[*reloadClient]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview only
			},
		},
		logger: logger.With("component", "reload"),
	}
}

// ServeHTTP upgrades the request and holds the connection until the page
// goes away or the hub closes.
func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}
	client := &reloadClient{conn: conn}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		client.close()
		return
	}
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	h.logger.Debug("client connected", "remote", req.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(client)
}

func (h *ReloadHub) remove(client *reloadClient) {
	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()
	client.close()
}

// NotifyReload asks every page to reload. file names the change, if known.
func (h *ReloadHub) NotifyReload(file string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeFull, File: file})
}

// NotifyError shows err in an overlay on every page.
func (h *ReloadHub) NotifyError(err error) {
	if err == nil {
		return
	}
	h.broadcast(ReloadMessage{Type: ReloadTypeError, Error: err.Error()})
}

// ClearError removes the error overlay on every page.
func (h *ReloadHub) ClearError() {
	h.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

func (h *ReloadHub) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	clients := make([]*reloadClient, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	sent := 0
	for _, client := range clients {
		if err := client.send(data); err != nil {
			h.remove(client)
			continue
		}
		sent++
	}
	h.logger.Debug("broadcast", "type", msg.Type, "clients", sent)
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client. Later connections are refused.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := h.clients
	h.clients = make(map[*reloadClient]struct{})
	h.mu.Unlock()

	for client := range clients {
		client.close()
	}
}

// ServeScript serves ClientScript.
func ServeScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(ClientScript))
}

// ClientScript connects a preview page to ReloadPath. It is served from
// ScriptPath rather than inlined so escaping never alters it.
const ClientScript = `(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/_htmlbuilder/reload');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            switch (msg.type) {
                case 'reload':
                    location.reload();
                    break;
                case 'error':
                    showError(msg.error);
                    break;
                case 'clear':
                    clearError();
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    function showError(error) {
        clearError();
        var overlay = document.createElement('pre');
        overlay.id = 'htmlbuilder-error';
        overlay.style.cssText = 'position:fixed;inset:0;margin:0;padding:20px;background:rgba(0,0,0,0.9);color:#ff5555;font-family:monospace;white-space:pre-wrap;z-index:999999;';
        overlay.textContent = error;
        document.body.appendChild(overlay);
    }

    function clearError() {
        var overlay = document.getElementById('htmlbuilder-error');
        if (overlay) {
            overlay.remove();
        }
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
`
