package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticChecker bool

func (s staticChecker) Healthy(context.Context) bool {
	return bool(s)
}

func TestCompositeHealthChecker(t *testing.T) {
	ctx := context.Background()

	assert.True(t, NewCompositeHealthChecker().Healthy(ctx))

	hc := NewCompositeHealthChecker().
		Add("elasticsearch", staticChecker(true)).
		Add("postgres", NewOkHealthChecker())
	assert.True(t, hc.Healthy(ctx))

	hc.Add("postgres", staticChecker(false))
	assert.False(t, hc.Healthy(ctx))
}
