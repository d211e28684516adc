package service

import "time"

const (
	DefaultCacheTTL = 24 * time.Hour
	cacheKeyPrefix  = "mortgage:payment"

	recordFields   = 4 // principal, rate, amortization, frequency
	maxRecordBytes = 4 << 10
)
