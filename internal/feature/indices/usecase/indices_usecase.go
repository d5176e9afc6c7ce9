// Package usecase は株価指数クオートの取得と集約のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"indices_monitor/internal/feature/indices/domain/catalog"
	"indices_monitor/internal/feature/indices/domain/entity"
	"indices_monitor/internal/platform/middleware"
)

const (
	// DefaultLookupTimeout は1銘柄あたりのライブ取得のタイムアウトです。
	DefaultLookupTimeout = 3 * time.Second

	NoteAllReal       = "All data is real-time"
	NoteSomeSimulated = "Some data is simulated due to API limitations"
	NoteAllSimulated  = "All data is simulated due to API limitations"
)

var (
	// ErrInvalidPrice はプロバイダーの価格が欠損または不正な場合のエラーです。
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidChange はプロバイダーの変動値が有限でない場合のエラーです。
	ErrInvalidChange = errors.New("invalid change")
)

// LiveQuoteSource は外部プロバイダーから1銘柄のクオートを取得するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LiveQuoteSource interface {
	LookupQuote(ctx context.Context, symbol string) (entity.ProviderQuote, error)
}

// IndicesUsecase は監視対象の全指数のクオートを解決します。
// 各銘柄はライブ取得に失敗しても疑似データにフォールバックするため、
// GetIndicesがエラーを返すことはありません。
type IndicesUsecase struct {
	source  LiveQuoteSource
	indices []entity.IndexDescriptor
	sim     *Simulator
	timeout time.Duration
	now     func() time.Time
}

// Option はIndicesUsecaseの設定を変更します。
type Option func(*IndicesUsecase)

// WithLookupTimeout は1銘柄あたりのタイムアウトを設定します。0以下は無視されます。
func WithLookupTimeout(d time.Duration) Option {
	return func(u *IndicesUsecase) {
		if d > 0 {
			u.timeout = d
		}
	}
}

// WithSimulator は疑似データ生成器を差し替えます。
func WithSimulator(s *Simulator) Option {
	return func(u *IndicesUsecase) {
		if s != nil {
			u.sim = s
		}
	}
}

// WithNow は現在時刻の取得関数を差し替えます。
func WithNow(now func() time.Time) Option {
	return func(u *IndicesUsecase) {
		if now != nil {
			u.now = now
		}
	}
}

// WithIndices は監視対象の指数リストを差し替えます。
func WithIndices(indices []entity.IndexDescriptor) Option {
	return func(u *IndicesUsecase) {
		u.indices = indices
	}
}

// NewIndicesUsecase はIndicesUsecaseの新しいインスタンスを生成します。
// sourceがnilの場合、すべての銘柄が疑似データになります。
func NewIndicesUsecase(source LiveQuoteSource, opts ...Option) *IndicesUsecase {
	u := &IndicesUsecase{
		source:  source,
		indices: catalog.Indices(),
		sim:     NewSimulator(nil),
		timeout: DefaultLookupTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetIndices は全指数のクオートを並行して解決し、カタログ順に集約して返します。
// 集約中に想定外のエラーが起きた場合は、全銘柄を疑似データで返します。
func (u *IndicesUsecase) GetIndices(ctx context.Context) entity.Snapshot {
	quotes, err := u.resolveAll(ctx)
	if err != nil {
		slog.Error("failed to aggregate index quotes, returning simulated data",
			"rqID", middleware.RequestIDFromContext(ctx),
			"error", err,
		)
		return u.simulatedSnapshot()
	}

	return entity.Snapshot{
		Quotes:    quotes,
		Timestamp: u.now().UTC(),
		Note:      noteFor(quotes),
	}
}

// resolveAll は各銘柄を独立したgoroutineで解決します。
// 1銘柄の失敗が他の銘柄に影響することはありません。
func (u *IndicesUsecase) resolveAll(ctx context.Context) ([]entity.Quote, error) {
	out := make([]entity.Quote, len(u.indices))

	var g errgroup.Group
	for i, d := range u.indices {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("resolve %s: panic: %v", d.Symbol, r)
				}
			}()
			out[i] = u.resolve(ctx, d).quote(d, u.now())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, q := range out {
		if q.Symbol != u.indices[i].Symbol {
			return nil, fmt.Errorf("quote %d: got symbol %q, want %q", i, q.Symbol, u.indices[i].Symbol)
		}
	}
	return out, nil
}

// resolve はライブ取得を試み、失敗した場合は疑似データを返します。
func (u *IndicesUsecase) resolve(ctx context.Context, d entity.IndexDescriptor) resolution {
	if u.source == nil {
		return syntheticResolution{move: u.sim.Move(d.BasePrice)}
	}

	lctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	pq, err := u.source.LookupQuote(lctx, d.Symbol)
	if err == nil {
		err = validate(pq)
	}
	if err != nil {
		slog.Debug("live quote unavailable, using simulated data",
			"rqID", middleware.RequestIDFromContext(ctx),
			"symbol", d.Symbol,
			"error", err,
		)
		return syntheticResolution{move: u.sim.Move(d.BasePrice)}
	}
	return liveResolution{pq: pq}
}

// simulatedSnapshot は全銘柄を疑似データで生成します。
func (u *IndicesUsecase) simulatedSnapshot() entity.Snapshot {
	now := u.now()
	quotes := make([]entity.Quote, 0, len(u.indices))
	for _, d := range u.indices {
		quotes = append(quotes, syntheticResolution{move: u.sim.Move(d.BasePrice)}.quote(d, now))
	}
	return entity.Snapshot{
		Quotes:    quotes,
		Timestamp: now.UTC(),
		Note:      NoteAllSimulated,
	}
}

func validate(pq entity.ProviderQuote) error {
	if !isFinite(pq.Price) || pq.Price <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidPrice, pq.Price)
	}
	for _, v := range []*float64{pq.Change, pq.ChangePercent} {
		if v != nil && !isFinite(*v) {
			return fmt.Errorf("%w: %v", ErrInvalidChange, *v)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func noteFor(quotes []entity.Quote) string {
	simulated := entity.Snapshot{Quotes: quotes}.SimulatedCount()
	switch {
	case simulated == 0:
		return NoteAllReal
	case simulated == len(quotes):
		return NoteAllSimulated
	default:
		return NoteSomeSimulated
	}
}
