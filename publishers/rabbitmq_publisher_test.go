package publishers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacation-rentals/domain"
)

func TestNewPropertyCreatedMessage(t *testing.T) {
	msg := NewPropertyCreatedMessage(&domain.VacationProperty{ID: 17})

	body, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"create","property_id":"17"}`, string(body))
}

func TestNoopPublisher(t *testing.T) {
	var p PropertyEventPublisher = NoopPublisher{}

	assert.NoError(t, p.PublishPropertyCreated(context.Background(), &domain.VacationProperty{ID: 1}))
	assert.NoError(t, p.Close())
}
