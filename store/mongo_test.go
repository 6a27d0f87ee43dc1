package store

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
)

// A run of not-found reads is a normal client pattern (polling a deleted
// resource) and must never open the breaker.
func TestBreakerIgnoresNotFoundReads(t *testing.T) {
	breaker := newBreaker()

	for i := 0; i < 10; i++ {
		_, err := breaker.Execute(func() (interface{}, error) {
			return nil, mongo.ErrNoDocuments
		})
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Fatalf("read %d: got %v, want ErrNoDocuments passed through", i, err)
		}
	}

	if _, err := breaker.Execute(func() (interface{}, error) {
		return "ok", nil
	}); err != nil {
		t.Fatalf("healthy call refused after not-found reads: %v", err)
	}
}

func TestBreakerTripsOnRealFailures(t *testing.T) {
	breaker := newBreaker()
	dbDown := errors.New("connection refused")

	for i := 0; i < 4; i++ {
		if _, err := breaker.Execute(func() (interface{}, error) {
			return nil, dbDown
		}); !errors.Is(err, dbDown) {
			t.Fatalf("failure %d: got %v", i, err)
		}
	}

	if _, err := breaker.Execute(func() (interface{}, error) {
		return "ok", nil
	}); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("breaker still closed after consecutive failures: %v", err)
	}
}
