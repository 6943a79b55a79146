package vote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"Shibaboard/internal/api/middleware"
	"Shibaboard/internal/core/ratings"
)

// mockRatingService implements ratings.Service for handler tests
type mockRatingService struct {
	castVoteFunc     func(ctx context.Context, voterID int64, targetKind string, targetID int64, kind string) (ratings.Aggregate, error)
	retractVoteFunc  func(ctx context.Context, voterID int64, targetKind string, targetID int64) (ratings.Aggregate, error)
	getSummariesFunc func(ctx context.Context, targetKind string, targetIDs []int64, viewerID *int64) ([]ratings.Summary, error)
}

func (m *mockRatingService) CastVote(ctx context.Context, voterID int64, targetKind string, targetID int64, kind string) (ratings.Aggregate, error) {
	return m.castVoteFunc(ctx, voterID, targetKind, targetID, kind)
}

func (m *mockRatingService) RetractVote(ctx context.Context, voterID int64, targetKind string, targetID int64) (ratings.Aggregate, error) {
	return m.retractVoteFunc(ctx, voterID, targetKind, targetID)
}

func (m *mockRatingService) GetSummaries(ctx context.Context, targetKind string, targetIDs []int64, viewerID *int64) ([]ratings.Summary, error) {
	return m.getSummariesFunc(ctx, targetKind, targetIDs, viewerID)
}

func authenticated(r *http.Request, userID int64) *http.Request {
	return middleware.SetViewer(r, &middleware.Viewer{UserID: userID})
}

func TestHandleCastVote(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		anonymous  bool
		serviceErr error
		wantStatus int
	}{
		{
			name:       "successful vote",
			body:       `{"targetKind":"post","targetId":42,"kind":"like"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "anonymous viewer",
			body:       `{"targetKind":"post","targetId":42,"kind":"like"}`,
			anonymous:  true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid body",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing target id",
			body:       `{"targetKind":"post","kind":"like"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown kind",
			body:       `{"targetKind":"post","targetId":42,"kind":"upvote"}`,
			serviceErr: ratings.ErrInvalidKind,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "target missing",
			body:       `{"targetKind":"post","targetId":404,"kind":"like"}`,
			serviceErr: ratings.ErrTargetNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockRatingService{
				castVoteFunc: func(ctx context.Context, voterID int64, targetKind string, targetID int64, kind string) (ratings.Aggregate, error) {
					if tt.serviceErr != nil {
						return ratings.Aggregate{}, tt.serviceErr
					}
					return ratings.Aggregate{Likes: 3, Dislikes: 1}, nil
				},
			}
			handler := NewCastVoteHandler(service)

			req := httptest.NewRequest(http.MethodPost, "/api/votes", bytes.NewBufferString(tt.body))
			if !tt.anonymous {
				req = authenticated(req, 7)
			}
			rr := httptest.NewRecorder()

			handler.HandleCastVote(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var agg ratings.Aggregate
				if err := json.NewDecoder(rr.Body).Decode(&agg); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if agg.Likes != 3 || agg.Dislikes != 1 {
					t.Errorf("expected recounted aggregate {3 1}, got %+v", agg)
				}
			}
		})
	}
}

func TestHandleRetractVote(t *testing.T) {
	service := &mockRatingService{
		retractVoteFunc: func(ctx context.Context, voterID int64, targetKind string, targetID int64) (ratings.Aggregate, error) {
			return ratings.Aggregate{Likes: 2}, nil
		},
	}
	handler := NewRetractVoteHandler(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/votes",
		bytes.NewBufferString(`{"targetKind":"comment","targetId":9}`))
	req = authenticated(req, 7)
	rr := httptest.NewRecorder()

	handler.HandleRetractVote(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandleGetSummaries(t *testing.T) {
	var gotViewerID *int64
	myRating := ratings.KindLike
	service := &mockRatingService{
		getSummariesFunc: func(ctx context.Context, targetKind string, targetIDs []int64, viewerID *int64) ([]ratings.Summary, error) {
			gotViewerID = viewerID
			return []ratings.Summary{
				{TargetID: 1, Likes: 2, MyRating: &myRating},
				{TargetID: 2},
			}, nil
		},
	}
	handler := NewGetSummariesHandler(service)

	// Authenticated viewer: viewer id is forwarded to the service
	req := httptest.NewRequest(http.MethodGet, "/api/votes/summaries?kind=post&ids=1,2", nil)
	req = authenticated(req, 7)
	rr := httptest.NewRecorder()

	handler.HandleGetSummaries(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if gotViewerID == nil || *gotViewerID != 7 {
		t.Errorf("expected viewer id 7 to be forwarded, got %v", gotViewerID)
	}

	var resp struct {
		Summaries []ratings.Summary `json:"summaries"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(resp.Summaries))
	}
	if resp.Summaries[0].MyRating == nil || *resp.Summaries[0].MyRating != ratings.KindLike {
		t.Errorf("expected myRating 'like' on first summary")
	}
	if resp.Summaries[1].MyRating != nil {
		t.Errorf("expected nil myRating on unvoted summary")
	}

	// Anonymous viewer: nil viewer id
	req = httptest.NewRequest(http.MethodGet, "/api/votes/summaries?kind=post&ids=1,2", nil)
	rr = httptest.NewRecorder()

	handler.HandleGetSummaries(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if gotViewerID != nil {
		t.Errorf("expected nil viewer id for anonymous request, got %v", *gotViewerID)
	}
}

func TestHandleGetSummaries_BadIDs(t *testing.T) {
	handler := NewGetSummariesHandler(&mockRatingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/votes/summaries?kind=post&ids=1,abc", nil)
	rr := httptest.NewRecorder()

	handler.HandleGetSummaries(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/votes/summaries?kind=post", nil)
	rr = httptest.NewRecorder()

	handler.HandleGetSummaries(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}
