package store

import (
	"github.com/jackc/pgerrcode"
)

// ErrorClassification is the result of [ErrorClassificator.Classify].
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier classifies document store errors by SQLSTATE.
//
// A failed upsert or delete is worth repeating when the server lost the
// connection (class 08), rolled the transaction back (class 40), ran out of
// resources (class 53) or is restarting. Constraint and syntax errors, and
// anything that is not a server error, are final.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow, code == pgerrcode.AdminShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}
