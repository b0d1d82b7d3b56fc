package service

import (
	"context"
	"testing"

	"hospital-coordination-backend/internal/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_SubmitAndReply(t *testing.T) {
	r := newTestRepos(t)
	svc := NewCommunityService(r.community, r.audit)
	ctx := context.Background()

	request, err := svc.SubmitRequest(ctx, "Ravi", "Need two units of O+ near Pune")
	require.NoError(t, err)
	_, err = uuid.Parse(request.ID)
	require.NoError(t, err)
	assert.Empty(t, request.Replies)

	updated, err := svc.Reply(ctx, request.ID, "Meera", "Ruby Hall has stock")
	require.NoError(t, err)
	require.Len(t, updated.Replies, 1)
	assert.Equal(t, "Meera", updated.Replies[0].Name)

	_, err = svc.Reply(ctx, uuid.NewString(), "Meera", "hello?")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	requests, err := svc.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Len(t, requests[0].Replies, 1)
}
