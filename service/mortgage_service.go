package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mortgage-calculator/domain"
	"mortgage-calculator/repository"
)

type MortgageService struct {
	repo     repository.MortgageRepository
	cache    repository.CacheRepository
	logger   *zap.Logger
	cacheTTL time.Duration
	layout   Layout
}

// Option customizes a MortgageService.
type Option func(*MortgageService)

// WithCacheTTL sets how long calculated payments stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *MortgageService) { s.cacheTTL = ttl }
}

// WithLayout sets the column layout used by ProcessBatch.
func WithLayout(layout Layout) Option {
	return func(s *MortgageService) { s.layout = layout }
}

// NewMortgageService creates a new MortgageService with the given repository
// and cache. A nil logger discards output.
func NewMortgageService(
	repo repository.MortgageRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	opts ...Option,
) *MortgageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MortgageService{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		cacheTTL: DefaultCacheTTL,
		layout:   DefaultLayout(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Calculate validates the input and returns the recurring payment for it.
// Validation failures are the domain errors, returned unchanged.
func (s *MortgageService) Calculate(
	ctx context.Context,
	input domain.MortgageInput,
) (domain.MortgageResult, error) {
	m, err := domain.NewMortgage(input.Principal, input.Rate, input.Frequency, input.Amortization)
	if err != nil {
		return domain.MortgageResult{}, err
	}
	return s.calculate(ctx, m), nil
}

func (s *MortgageService) calculate(ctx context.Context, m *domain.Mortgage) domain.MortgageResult {
	input := m.Input()
	key := cacheKey(input)

	var result domain.MortgageResult
	if payment, ok := s.cachedPayment(ctx, key); ok {
		result = domain.NewMortgageResult(m, payment)
	} else {
		result = m.Result()
		if s.cache != nil {
			value := strconv.FormatFloat(result.Payment, 'f', -1, 64)
			if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
				s.logger.Warn("failed to cache mortgage payment", zap.String("key", key), zap.Error(err))
			}
		}
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(input, result); err != nil {
		s.logger.Warn("failed to save mortgage calculation", zap.Error(err))
	}

	return result
}

func (s *MortgageService) cachedPayment(ctx context.Context, key string) (float64, bool) {
	if s.cache == nil {
		return 0, false
	}
	value, ok := s.cache.Get(ctx, key)
	if !ok {
		return 0, false
	}
	payment, err := strconv.ParseFloat(value, 64)
	if err != nil {
		s.logger.Warn("ignoring corrupt cached payment", zap.String("key", key), zap.String("value", value))
		return 0, false
	}
	return payment, true
}

// ProcessBatch reads one record per line from r and returns a Record for
// every non-blank line, in input order. A rejected line never stops the
// batch, and a line longer than maxRecordBytes is rejected on its own with
// ErrMalformedRecord. Only a failure to read r (or ctx cancellation) is
// returned.
func (s *MortgageService) ProcessBatch(ctx context.Context, r io.Reader) ([]Record, error) {
	var (
		records []Record
		failed  int
	)

	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		line, tooLong, readErr := readRecordLine(br)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return records, fmt.Errorf("reading mortgage records: %w", readErr)
		}

		if tooLong || strings.TrimSpace(line) != "" {
			var rec Record
			if tooLong {
				rec = Record{
					Line: strings.TrimSpace(line) + "...",
					Err:  fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedRecord, maxRecordBytes),
				}
			} else {
				rec = ParseRecord(line, s.layout)
			}

			if rec.OK() {
				rec.Result = s.calculate(ctx, rec.Mortgage)
			} else {
				failed++
				s.logger.Debug("rejected mortgage record", zap.String("line", rec.Line), zap.Error(rec.Err))
			}
			records = append(records, rec)
		}

		if readErr != nil {
			break
		}
	}

	s.logger.Info("mortgage batch processed",
		zap.Int("records", len(records)),
		zap.Int("failed", failed),
	)
	return records, nil
}

// readRecordLine returns the next line without its terminator. A line longer
// than maxRecordBytes is consumed up to its newline and reported as tooLong,
// with only its first maxRecordBytes kept. err is io.EOF after the last line.
func readRecordLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, readErr := br.ReadSlice('\n')
		if readErr == nil {
			chunk = chunk[:len(chunk)-1]
		}
		if room := maxRecordBytes - len(buf); len(chunk) > room {
			tooLong = true
			chunk = chunk[:room]
		}
		buf = append(buf, chunk...)

		if errors.Is(readErr, bufio.ErrBufferFull) {
			continue
		}
		return string(buf), tooLong, readErr
	}
}

func cacheKey(input domain.MortgageInput) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d",
		cacheKeyPrefix,
		strconv.FormatFloat(input.Principal, 'f', -1, 64),
		input.Rate,
		input.Frequency,
		input.Amortization,
	)
}
