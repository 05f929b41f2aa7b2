package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/isoteriksoftware/tictac-api/internal/pkg"
	"github.com/isoteriksoftware/tictac-api/internal/usecase"
)

type matchmaker interface {
	Status(ctx context.Context) (usecase.Counts, error)

	Join(ctx context.Context, id, requestedName string) (*usecase.JoinResult, error)
	Ready(ctx context.Context, id string) (*usecase.ReadyResult, error)
	Leave(ctx context.Context, id string) (*usecase.LeaveResult, error)

	Propose(ctx context.Context, challengerID, opponentID string) (*usecase.ProposeResult, error)
	Accept(ctx context.Context, opponentID, challengerID string) (*usecase.AcceptResult, error)
	Decline(ctx context.Context, opponentID, challengerID string) (*usecase.DeclineResult, error)

	MakeMove(ctx context.Context, participantID, sessionID, move string) (*usecase.MoveResult, error)
	Forfeit(ctx context.Context, participantID, sessionID string) (*usecase.ForfeitResult, error)
	Disconnect(ctx context.Context, id string) (*usecase.DisconnectResult, error)
}

// connection is one upgraded client socket. The id doubles as the
// participant identifier for the whole lifetime of the connection.
type connection struct {
	id      string
	bufrw   *bufio.ReadWriter
	writeMu sync.Mutex
}

type Server struct {
	logger     *slog.Logger
	matchmaker matchmaker

	handlers map[string]func(ctx context.Context, conn *connection, message *Message) error

	connectionsMutex sync.RWMutex
	connections      map[string]*connection
}

func New(logger *slog.Logger, matchmaker matchmaker) *Server {
	server := &Server{
		logger:     logger,
		matchmaker: matchmaker,

		handlers:    make(map[string]func(context.Context, *connection, *Message) error),
		connections: make(map[string]*connection),
	}

	server.handlers[actionJoin] = server.handleJoin
	server.handlers[actionReady] = server.handleReady
	server.handlers[actionLeave] = server.handleLeave
	server.handlers[actionChallengePropose] = server.handlePropose
	server.handlers[actionChallengeAccept] = server.handleAccept
	server.handlers[actionChallengeDecline] = server.handleDecline
	server.handlers[actionMove] = server.handleMove
	server.handlers[actionForfeit] = server.handleForfeit

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	if req.Header.Get("Upgrade") != "websocket" {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")
	acceptKey := pkg.GenerateAcceptKey(key)

	writer.Header().Set("Upgrade", "websocket")
	writer.Header().Set("Connection", "Upgrade")
	writer.Header().Set("Sec-WebSocket-Accept", acceptKey)
	writer.WriteHeader(http.StatusSwitchingProtocols)

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking", "error", http.StatusText(http.StatusInternalServerError))
		return
	}

	netConn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer netConn.Close()

	conn := &connection{
		id:    pkg.GenerateConnectionID(),
		bufrw: bufrw,
	}
	that.addConnection(conn)

	log = log.With("connectionID", conn.id)
	log.Info("WebSocket connection established")

	// every connection starts with the current population snapshot
	if counts, statusErr := that.matchmaker.Status(ctx); statusErr == nil {
		if err = that.sendMessage(conn, actionStatusChanged, StatusPayload{Participants: counts.Participants, Sessions: counts.Sessions}); err != nil {
			log.Error("failed to send status", "error", err)
		}
	} else {
		log.Error("failed to get status", "error", statusErr)
	}

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Debug("connection read loop ended", "error", err)
	}

	that.dropConnection(ctx, conn)
}

// handleMessages - processes messages from the client until the connection
// drops.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages", "connectionID", conn.id)

	for {
		reqBody, err := readRequest(conn.bufrw)
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		if reqBody == nil {
			continue
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		if err = handler(ctx, conn, &message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

func (that *Server) addConnection(conn *connection) {
	that.connectionsMutex.Lock()
	that.connections[conn.id] = conn
	that.connectionsMutex.Unlock()
}

// dropConnection deregisters the connection and runs the implicit disconnect
// cleanup: the opponent (if any) learns its peer is gone and everybody gets
// the updated population.
func (that *Server) dropConnection(ctx context.Context, conn *connection) {
	log := that.logger.With("method", "dropConnection", "connectionID", conn.id)

	that.connectionsMutex.Lock()
	delete(that.connections, conn.id)
	that.connectionsMutex.Unlock()

	result, err := that.matchmaker.Disconnect(ctx, conn.id)
	if err != nil {
		log.Error("failed to run disconnect cleanup", "error", err)
		return
	}

	if result.Survivor != nil {
		that.sendTo(result.Survivor.ID, actionOpponentDisconnected, nil)
		that.broadcastExcept(result.Survivor.ID, actionJoined, result.Survivor.Public())
	}

	if !result.Removed {
		return
	}

	that.broadcast(actionLeft, ParticipantIDPayload{ID: conn.id})
	that.broadcast(actionStatusChanged, StatusPayload{
		Participants: result.Counts.Participants,
		Sessions:     result.Counts.Sessions,
	})

	log.Info("participant disconnected")
}

func (that *Server) sendTo(id, action string, payload any) {
	that.connectionsMutex.RLock()
	conn, ok := that.connections[id]
	that.connectionsMutex.RUnlock()

	if !ok {
		that.logger.Warn("connection not found", "connectionID", id, "action", action)
		return
	}

	if err := that.sendMessage(conn, action, payload); err != nil {
		that.logger.Error("failed to send message", "connectionID", id, "action", action, "error", err)
	}
}

func (that *Server) broadcast(action string, payload any) {
	that.broadcastExcept("", action, payload)
}

// broadcastExcept sends to every connection but the excluded one, matching
// the source's socket.broadcast semantics.
func (that *Server) broadcastExcept(excludeID, action string, payload any) {
	that.connectionsMutex.RLock()
	targets := make([]*connection, 0, len(that.connections))
	for id, conn := range that.connections {
		if id == excludeID {
			continue
		}
		targets = append(targets, conn)
	}
	that.connectionsMutex.RUnlock()

	for _, conn := range targets {
		if err := that.sendMessage(conn, action, payload); err != nil {
			that.logger.Error("failed to broadcast message", "connectionID", conn.id, "action", action, "error", err)
		}
	}
}
