package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/service"
)

const keepAliveInterval = 15 * time.Second

type EventSubscriber interface {
	Subscribe(assetID string) chan service.Event
	Unsubscribe(assetID string, ch chan service.Event)
}

type SSEHandler struct {
	events    EventSubscriber
	delivery  DeliveryService
	keepAlive time.Duration
}

func NewSSEHandler(events EventSubscriber, delivery DeliveryService) *SSEHandler {
	return &SSEHandler{
		events:    events,
		delivery:  delivery,
		keepAlive: keepAliveInterval,
	}
}

// sseWrite writes one "state" event.
func sseWrite(w http.ResponseWriter, event service.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: state\ndata: %s\n\n", data); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func currentState(asset *domain.MediaAsset) service.Event {
	return service.Event{
		AssetID:       asset.ID,
		State:         asset.State,
		FailureReason: asset.FailureReason,
		At:            asset.UpdatedAt,
	}
}

// Events streams the asset's state: the current one first, then every
// published transition. The stream ends after a terminal state.
func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		// Subscribe before reading the record so no transition is missed
		// between the read and the subscription.
		ch := h.events.Subscribe(id)
		defer h.events.Unsubscribe(id, ch)

		asset, err := h.delivery.Asset(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, msgVideoNotFound)
				return
			}
			logger.Error.Printf("events for asset %s: %v", logger.SanitizeForLog(id), err)
			writeMessage(w, http.StatusInternalServerError, msgDetailsFailed)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		if err := sseWrite(w, currentState(asset)); err != nil || asset.State.IsTerminal() {
			return
		}
		last := asset.State

		ctx := r.Context()
		keepAlive := time.NewTicker(h.keepAlive)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case event, ok := <-ch:
				if !ok {
					return
				}
				if event.State == last {
					continue
				}
				last = event.State
				if err := sseWrite(w, event); err != nil {
					return
				}
				if event.State.IsTerminal() {
					return
				}
			}
		}
	}
}
