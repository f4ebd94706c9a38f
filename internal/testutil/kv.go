package testutil

import (
	"context"

	"github.com/dtroode/medsetu-storefront/internal/model"
)

var _ model.KV = FailingKV{}

// FailingKV is a model.KV whose every operation returns Err.
type FailingKV struct {
	Err error
}

func (f FailingKV) Get(context.Context, string) ([]byte, error) {
	return nil, f.Err
}

func (f FailingKV) Set(context.Context, string, []byte) error {
	return f.Err
}

func (f FailingKV) Delete(context.Context, string) error {
	return f.Err
}
