package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/league-portal/internal/platform/poller"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const (
	liveWriteWait      = 10 * time.Second
	livePongWait       = 60 * time.Second
	livePingPeriod     = (livePongWait * 9) / 10
	liveMaxMessageSize = 4096
)

// The live feed is public read-only data, so any origin may subscribe.
var liveUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// liveClientMessage is what a websocket client may send: a filter change or a
// manual refresh.
type liveClientMessage struct {
	Type   string `json:"type"`
	Query  string `json:"q"`
	League string `json:"league"`
}

type liveServerMessage struct {
	Type string          `json:"type"`
	Data liveSnapshotDTO `json:"data"`
}

// LiveSocket upgrades to a websocket and streams every applied live snapshot,
// filtered by ?q= and ?league= until the client changes the filter.
func (h *Handler) LiveSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := liveUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(r.Context(), "live websocket upgrade failed", "error", err)
		return
	}

	lang := langFromRequest(r)
	sub := h.liveFeed.Subscribe(liveFilterFromRequest(r))
	h.logger.InfoContext(r.Context(), "live websocket subscribed", "subscribers", h.liveFeed.Subscribers())

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	go h.liveReadPump(ctx, cancel, conn, sub)
	h.liveWritePump(ctx, cancel, conn, sub, lang)
}

func (h *Handler) liveReadPump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, sub *usecase.LiveSubscription) {
	defer cancel()

	conn.SetReadLimit(liveMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WarnContext(ctx, "live websocket read failed", "error", err)
			}
			return
		}

		var msg liveClientMessage
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			h.logger.DebugContext(ctx, "ignore malformed live message", "error", err)
			continue
		}
		switch strings.ToLower(strings.TrimSpace(msg.Type)) {
		case "filter":
			sub.SetFilter(usecase.LiveFilter{Query: strings.TrimSpace(msg.Query), LeagueSlug: strings.TrimSpace(msg.League)})
		case "refresh":
			if _, err := h.liveFeed.Refresh(ctx); err != nil {
				h.logger.WarnContext(ctx, "manual live refresh failed", "error", err)
			}
		}
	}
}

func (h *Handler) liveWritePump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, sub *usecase.LiveSubscription, lang string) {
	ticker := time.NewTicker(livePingPeriod)
	defer func() {
		ticker.Stop()
		sub.Close()
		cancel()
		_ = conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-sub.Updates():
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "live feed closed"))
				return
			}
			payload, err := sonic.Marshal(liveServerMessage{Type: "snapshot", Data: liveSnapshotToDTO(snap, lang)})
			if err != nil {
				h.logger.ErrorContext(ctx, "encode live snapshot failed", "error", err)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) GetLiveSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveSnapshot")
	defer span.End()

	snap := h.liveFeed.Snapshot().Filter(liveFilterFromRequest(r))
	writeSuccess(ctx, w, http.StatusOK, liveSnapshotToDTO(snap, langFromRequest(r)))
}

// RefreshLive runs a manual refresh outside the poll schedule.
func (h *Handler) RefreshLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshLive")
	defer span.End()

	snap, err := h.liveFeed.Refresh(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveSnapshotToDTO(snap.Filter(liveFilterFromRequest(r)), langFromRequest(r)))
}

type liveIntervalRequest struct {
	Interval string `json:"interval" validate:"required,oneof=10s 30s 60s"`
}

type liveIntervalDTO struct {
	Interval    string `json:"interval"`
	Subscribers int    `json:"subscribers"`
}

func (h *Handler) GetLiveInterval(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveInterval")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, liveIntervalDTO{
		Interval:    h.liveFeed.Interval().String(),
		Subscribers: h.liveFeed.Subscribers(),
	})
}

// UpdateLiveInterval swaps the feed's poll interval without restarting it.
func (h *Handler) UpdateLiveInterval(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLiveInterval")
	defer span.End()

	req, ok := readPayload[liveIntervalRequest](ctx, h, w, r)
	if !ok {
		return
	}
	d, err := poller.ParseInterval(req.Interval)
	if err != nil {
		writeError(ctx, w, &usecase.ValidationError{Fields: []usecase.FieldError{{Field: "interval", Message: err.Error()}}})
		return
	}
	if err := h.liveFeed.SetInterval(d); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, liveIntervalDTO{
		Interval:    h.liveFeed.Interval().String(),
		Subscribers: h.liveFeed.Subscribers(),
	})
}
