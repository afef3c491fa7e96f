package server

import (
	"log/slog"
	"net/http"

	"nhooyr.io/websocket"
)

// handleWSEvents pushes the same game events as the SSE stream over a
// WebSocket. Client messages are ignored.
func handleWSEvents(logger *slog.Logger, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ch := broker.Subscribe()
		defer broker.Unsubscribe(ch)

		ctx := conn.CloseRead(r.Context())
		for {
			select {
			case <-ctx.Done():
				logger.Debug("websocket closed", "error", ctx.Err())
				return
			case data := <-ch:
				if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}
