// Package chatbot wires the sanitizer, classifier, extractor and response
// generator behind a single ProcessMessage entry point, owns the session
// store, and drives the interactive shell.
package chatbot

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"BankChat/internal/bank"
	"BankChat/internal/config"
	"BankChat/internal/entity"
	"BankChat/internal/intent"
	"BankChat/internal/response"
	"BankChat/internal/security"
	"BankChat/internal/session"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// invalidMessageReply is returned when the message is empty once sanitized.
	invalidMessageReply = "I didn't receive a valid message. Please try again."

	// internalErrorReply is the only thing a caller sees when the pipeline
	// faults. Nothing propagates past ProcessMessage.
	internalErrorReply = "I apologize, but I encountered an error. Please try again or " +
		"contact customer support at 1-800-SECURE if the issue persists."
)

// ChatBot represents the main application
type ChatBot struct {
	config    config.Config
	sessions  *session.Store
	generator *response.Generator
	bankSvc   bank.AccountService
	rnd       *rand.Rand
	logger    *slog.Logger
	tracer    trace.Tracer
	meter     metric.Meter
	db        *sql.DB

	transcriptWG sync.WaitGroup
}

// Option customizes a ChatBot at construction time.
type Option func(*ChatBot)

// WithLogger replaces the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cb *ChatBot) { cb.logger = logger }
}

// WithAccountService swaps the demo banking backend for another
// implementation.
func WithAccountService(svc bank.AccountService) Option {
	return func(cb *ChatBot) { cb.bankSvc = svc }
}

// WithTranscriptDB enables the append-only exchange log.
func WithTranscriptDB(db *sql.DB) Option {
	return func(cb *ChatBot) { cb.db = db }
}

// New creates a ChatBot. Tracer and meter come from the global OpenTelemetry
// providers, so without telemetry initialization they are no-ops and the bot
// stays fully usable in tests.
func New(cfg config.Config, opts ...Option) *ChatBot {
	cb := &ChatBot{
		config:   cfg,
		sessions: session.NewStore(),
		bankSvc:  bank.NewMockService(),
		logger:   slog.Default(),
		tracer:   otel.Tracer("bankchat"),
		meter:    otel.Meter("bankchat"),
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cb.rnd = rand.New(rand.NewSource(seed))

	for _, opt := range opts {
		opt(cb)
	}

	cb.generator = response.NewGenerator(cb.bankSvc, cb.rnd)
	cb.logger.Info("chatbot initialized", "seeded", cfg.Seed != 0)
	return cb
}

// ProcessMessage runs one utterance through the full pipeline and always
// returns displayable text. Any internal fault is recovered here, logged,
// and surfaced as the fixed apology string; no error ever reaches the
// transport layer.
func (cb *ChatBot) ProcessMessage(ctx context.Context, userID, message string) (reply string) {
	ctx, span := cb.tracer.Start(ctx, "process_message")
	defer span.End()

	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			cb.logger.Error("message processing failed", "user_id", userID, "panic", r)
			reply = internalErrorReply
		}
	}()

	sess, created := cb.sessions.GetOrCreate(userID)
	if created {
		cb.logger.Info("new session created", "user_id", userID)
		cb.countSessionCreated(ctx)
	}

	sanitized := security.Sanitize(message)
	if sanitized == "" {
		return invalidMessageReply
	}

	in := intent.Classify(sanitized)
	sess.LastIntent = in
	cb.logger.Info("intent classified", "user_id", userID, "intent", string(in))

	entities := entity.Extract(sanitized)

	reply = cb.generator.Generate(in, sess, entities)

	cb.recordTurn(ctx, time.Since(start))
	cb.logger.Info("message processed", "user_id", userID, "intent", string(in))
	return reply
}

// CreateSession registers a fresh session for userID, replacing any prior
// one.
func (cb *ChatBot) CreateSession(userID string) *session.Session {
	sess := cb.sessions.Create(userID)
	cb.logger.Info("new session created", "user_id", userID)
	return sess
}

// EndSession drops the session for userID. Calling it twice, or for an
// unknown user, is harmless.
func (cb *ChatBot) EndSession(userID string) {
	cb.sessions.End(userID)
	cb.logger.Info("session ended", "user_id", userID)
}

// Session exposes the live session for userID, mainly for the shell, an
// external auth collaborator, and tests.
func (cb *ChatBot) Session(userID string) (*session.Session, bool) {
	return cb.sessions.Get(userID)
}

func (cb *ChatBot) countSessionCreated(ctx context.Context) {
	counter, err := cb.meter.Int64Counter(
		"chat.sessions.created",
		metric.WithDescription("Sessions registered in the in-memory store"),
	)
	if err != nil {
		cb.logger.Warn("failed to create counter", "error", err)
		return
	}
	counter.Add(ctx, 1)
}

func (cb *ChatBot) recordTurn(ctx context.Context, duration time.Duration) {
	counter, err := cb.meter.Int64Counter(
		"chat.messages.processed",
		metric.WithDescription("Messages run through the response pipeline"),
	)
	if err == nil {
		counter.Add(ctx, 1)
	}

	histogram, err := cb.meter.Float64Histogram(
		"chat.process.duration",
		metric.WithDescription("Message processing duration in milliseconds"),
	)
	if err == nil {
		histogram.Record(ctx, float64(duration.Microseconds())/1000.0)
	}
}

// lastIntent reads the classified intent off the live session. Callers must
// not be concurrent with ProcessMessage for the same user; the shell reads
// it between turns.
func (cb *ChatBot) lastIntent(userID string) intent.Intent {
	if sess, ok := cb.sessions.Get(userID); ok {
		return sess.LastIntent
	}
	return ""
}

// recordTranscript appends one exchange to the audit log. The transcript is
// write-only from the bot's perspective: sessions are never restored from
// it. Failures are logged and swallowed so the log can never fail a turn.
// The intent is passed in by value so async writers never touch the session.
func (cb *ChatBot) recordTranscript(userID string, in intent.Intent, message, reply string) {
	if cb.db == nil {
		return
	}

	_, err := cb.db.Exec(
		"INSERT INTO exchanges (user_id, intent, message, reply, timestamp) VALUES (?, ?, ?, ?, ?)",
		userID, string(in), message, reply, time.Now(),
	)
	if err != nil {
		cb.logger.Warn("failed to record exchange", "error", err)
	}
}

// Run starts the interactive shell and blocks until an exit keyword or EOF.
func (cb *ChatBot) Run() error {
	if cb.db != nil {
		// Outstanding transcript writes finish before the database closes.
		defer func() {
			cb.transcriptWG.Wait()
			cb.db.Close()
		}()
	}

	fmt.Printf("=== %s Chatbot ===\n", config.BankName)
	fmt.Println("Type 'quit' to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()
	userID := cb.config.UserID

	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			reply := cb.ProcessMessage(ctx, userID, "goodbye")
			fmt.Printf("Bot: %s\n", reply)
			cb.recordTranscript(userID, cb.lastIntent(userID), "goodbye", reply)
			cb.EndSession(userID)
			return scanner.Err()
		}

		reply := cb.ProcessMessage(ctx, userID, input)
		fmt.Printf("Bot: %s\n\n", reply)

		// The intent is captured here, before the next turn can touch the
		// session; the goroutine only writes the copied values.
		in := cb.lastIntent(userID)
		cb.transcriptWG.Add(1)
		go func() {
			defer cb.transcriptWG.Done()
			cb.recordTranscript(userID, in, input, reply)
		}()
	}

	cb.EndSession(userID)
	return scanner.Err()
}
