package assistant

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/bizgrid/bizgrid/internal/apisrv/apicommon"
	"github.com/bizgrid/bizgrid/internal/apisrv/auth"
	"github.com/bizgrid/bizgrid/internal/apisrv/request"
	"github.com/bizgrid/bizgrid/internal/common/httpx"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

type realtimeFrame struct {
	Message string `json:"message"`
}

type realtimeReply struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

// realtime upgrades to a websocket and relays frames to the model backend.
// The credential check happens before the upgrade, so unauthenticated callers
// get a plain 401 response, not a failed handshake.
func realtime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, autherr := auth.RequireToken(r)
	if autherr != nil {
		httpx.ErrUnAuthorized(auth.GenericAuthError).Send(w)
		return
	}
	if _, err := request.TenantFromQuery(r.URL.Query()); err != nil {
		httpx.SendError(w, err)
		return
	}
	ctx = apicommon.SetActorInContext(ctx, actor)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		var frame realtimeFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Ctx(ctx).Debug().Err(err).Msg("realtime connection closed")
			}
			return
		}
		if frame.Message == "" {
			if err := conn.WriteJSON(realtimeReply{Error: ErrEmptyMessage.Error()}); err != nil {
				return
			}
			continue
		}
		reply, rerr := responder.Respond(ctx, nil, frame.Message)
		if rerr != nil {
			if err := conn.WriteJSON(realtimeReply{Error: ErrModelUnavailable.Error()}); err != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(realtimeReply{Reply: reply}); err != nil {
			return
		}
	}
}
