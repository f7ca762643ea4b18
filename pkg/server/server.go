package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/vshtohryn/assetserve/pkg/catalog"
	"github.com/vshtohryn/assetserve/pkg/config"
	"github.com/vshtohryn/assetserve/pkg/importer"
	"github.com/vshtohryn/assetserve/pkg/match"
	"github.com/vshtohryn/assetserve/pkg/session"
)

// Server handles the IPC for classification and suggestions.
type Server struct {
	catalog *catalog.Catalog
	cfg     *config.Config
	dec     *msgpack.Decoder

	// encMu serializes writes: session events arrive from timer
	// goroutines while the request loop is replying.
	encMu sync.Mutex
	enc   *msgpack.Encoder

	// sess is created on the first session command; hosts that only use
	// one-shot completes never pay for it.
	sess *session.Session
}

// NewServer creates a new engine server using stdin/stdout for IPC.
func NewServer(cat *catalog.Catalog, cfg *config.Config) *Server {
	return &Server{
		catalog: cat,
		cfg:     cfg,
		dec:     msgpack.NewDecoder(os.Stdin),
		enc:     msgpack.NewEncoder(os.Stdout),
	}
}

// NewServerWithIO creates a server over explicit streams. Tests use it.
func NewServerWithIO(cat *catalog.Catalog, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		catalog: cat,
		cfg:     cfg,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting engine server")
	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Cmd {
	case "complete":
		s.handleComplete(req)
	case "classify":
		s.handleClassify(req)
	case "import":
		s.handleImport(req)
	case "input":
		s.session().OnInput(req.Query)
		s.sendSessionAck(req.ID)
	case "navigate":
		s.session().OnNavigate(req.Dir)
		s.sendSessionAck(req.ID)
	case "accept":
		text, ok := s.session().OnAccept()
		s.send(AcceptResponse{ID: req.ID, Text: text, OK: ok})
	case "dismiss":
		s.session().OnDismiss()
		s.sendSessionAck(req.ID)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown command: %s", req.Cmd), 400)
	}
}

// handleComplete validates the query bounds, ranks it and replies with the
// candidate list. Rank positions start at 1.
func (s *Server) handleComplete(req Request) {
	query := req.Query
	if query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}
	if len(query) < s.cfg.Engine.MinQuery {
		s.sendError(req.ID, fmt.Sprintf("query must be at least %d characters", s.cfg.Engine.MinQuery), 400)
		return
	}
	if len(query) > s.cfg.Engine.MaxQuery {
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d characters", s.cfg.Engine.MaxQuery), 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.Engine.SuggestLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	candidates := match.Rank(query, s.catalog, limit)
	elapsed := time.Since(start)

	suggestions := make([]Suggestion, len(candidates))
	for i, c := range candidates {
		suggestions[i] = Suggestion{Text: c.Text, Rank: uint16(i + 1)}
	}

	s.send(CompleteResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleClassify(req Request) {
	if req.Query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		return
	}

	cls, ok := match.Classify(req.Query, s.catalog)
	if !ok {
		s.send(ClassifyResponse{ID: req.ID, Found: false})
		return
	}
	s.send(ClassifyResponse{
		ID:           req.ID,
		Found:        true,
		Manufacturer: cls.Manufacturer,
		Category:     string(cls.Category),
		Type:         cls.Type,
		Score:        cls.Score,
	})
}

func (s *Server) handleImport(req Request) {
	draft := importer.Draft{
		Manufacturer: req.Manufacturer,
		PartNumber:   req.PartNumber,
	}
	result, err := importer.Normalize(req.Record, draft, s.catalog)
	if err != nil {
		s.sendError(req.ID, err.Error(), 422)
		return
	}

	fields := make(map[string]string, len(result.Fields))
	for k, v := range result.Fields {
		fields[string(k)] = v
	}
	s.send(ImportResponse{ID: req.ID, Fields: fields, MatchedAny: result.MatchedAny})
}

// session lazily builds the one suggestion session this server drives,
// taking the limit and debounce from config. Timer-driven snapshots go out
// as unsolicited session events.
func (s *Server) session() *session.Session {
	if s.sess == nil {
		s.sess = session.New(s.catalog,
			session.WithLimit(s.cfg.Engine.SuggestLimit),
			session.WithDebounce(time.Duration(s.cfg.Session.DebounceMs)*time.Millisecond),
			session.WithNotify(func(snap session.Snapshot) {
				s.send(sessionResponse("", snap))
			}))
	}
	return s.sess
}

func (s *Server) sendSessionAck(id string) {
	s.send(sessionResponse(id, s.sess.Snapshot()))
}

func sessionResponse(id string, snap session.Snapshot) SessionResponse {
	return SessionResponse{
		ID:         id,
		Event:      "session",
		State:      snap.State.String(),
		Query:      snap.Query,
		Candidates: snap.Candidates,
		Active:     snap.ActiveIndex,
	}
}

func (s *Server) send(response any) {
	s.encMu.Lock()
	defer s.encMu.Unlock()
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
