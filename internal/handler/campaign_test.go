package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/chronicle/api/internal/middleware"
	"github.com/forgo/chronicle/api/internal/model"
	"github.com/forgo/chronicle/api/internal/service"
)

// ============================================================================
// Mock repositories
// ============================================================================

type stubCampaignRepo struct {
	campaigns map[string]*model.Campaign
	nextID    int
	deleteErr error
}

func newStubCampaignRepo() *stubCampaignRepo {
	return &stubCampaignRepo{campaigns: make(map[string]*model.Campaign)}
}

func (s *stubCampaignRepo) Create(ctx context.Context, campaign *model.Campaign) error {
	s.nextID++
	campaign.ID = fmt.Sprintf("campaign:%d", s.nextID)
	campaign.CreatedOn = time.Now()
	s.campaigns[campaign.ID] = campaign
	return nil
}

func (s *stubCampaignRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	count := 0
	for _, c := range s.campaigns {
		if c.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (s *stubCampaignRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Campaign, error) {
	result := []*model.Campaign{}
	for _, c := range s.campaigns {
		if c.OwnerID == ownerID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *stubCampaignRepo) GetOwned(ctx context.Context, id, ownerID string) (*model.Campaign, error) {
	c, ok := s.campaigns[id]
	if !ok || c.OwnerID != ownerID {
		return nil, nil
	}
	return c, nil
}

func (s *stubCampaignRepo) DeleteOwned(ctx context.Context, id, ownerID string) (bool, error) {
	if s.deleteErr != nil {
		return false, s.deleteErr
	}
	c, ok := s.campaigns[id]
	if !ok || c.OwnerID != ownerID {
		return false, nil
	}
	delete(s.campaigns, id)
	return true, nil
}

type stubQuestRepo struct {
	quests map[string]*model.Quest
	nextID int
}

func newStubQuestRepo() *stubQuestRepo {
	return &stubQuestRepo{quests: make(map[string]*model.Quest)}
}

func (s *stubQuestRepo) Create(ctx context.Context, quest *model.Quest) error {
	s.nextID++
	quest.ID = fmt.Sprintf("quest:%d", s.nextID)
	quest.CreatedOn = time.Now()
	s.quests[quest.ID] = quest
	return nil
}

func (s *stubQuestRepo) ListByCampaign(ctx context.Context, campaignID, ownerID string) ([]*model.Quest, error) {
	result := []*model.Quest{}
	for _, q := range s.quests {
		if q.CampaignID == campaignID && q.OwnerID == ownerID {
			result = append(result, q)
		}
	}
	return result, nil
}

func (s *stubQuestRepo) DeleteOwned(ctx context.Context, id, ownerID string) (bool, error) {
	q, ok := s.quests[id]
	if !ok || q.OwnerID != ownerID {
		return false, nil
	}
	delete(s.quests, id)
	return true, nil
}

func (s *stubQuestRepo) DeleteByCampaign(ctx context.Context, campaignID, ownerID string) error {
	for id, q := range s.quests {
		if q.CampaignID == campaignID && q.OwnerID == ownerID {
			delete(s.quests, id)
		}
	}
	return nil
}

type stubLocationRepo struct {
	locations map[string]*model.Location
	nextID    int
}

func newStubLocationRepo() *stubLocationRepo {
	return &stubLocationRepo{locations: make(map[string]*model.Location)}
}

func (s *stubLocationRepo) Create(ctx context.Context, location *model.Location) error {
	s.nextID++
	location.ID = fmt.Sprintf("location:%d", s.nextID)
	location.CreatedOn = time.Now()
	s.locations[location.ID] = location
	return nil
}

func (s *stubLocationRepo) ListByCampaign(ctx context.Context, campaignID, ownerID string) ([]*model.Location, error) {
	result := []*model.Location{}
	for _, l := range s.locations {
		if l.CampaignID == campaignID && l.OwnerID == ownerID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (s *stubLocationRepo) DeleteOwned(ctx context.Context, id, ownerID string) (bool, error) {
	l, ok := s.locations[id]
	if !ok || l.OwnerID != ownerID {
		return false, nil
	}
	delete(s.locations, id)
	return true, nil
}

func (s *stubLocationRepo) DeleteByCampaign(ctx context.Context, campaignID, ownerID string) error {
	for id, l := range s.locations {
		if l.CampaignID == campaignID && l.OwnerID == ownerID {
			delete(s.locations, id)
		}
	}
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

var testActor = model.Actor{AccountID: "account:test", IsPremium: false}

func makeJSONRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withActor(req *http.Request, actor model.Actor) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.ActorKey, actor)
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func newCampaignHandler() (*CampaignHandler, *stubCampaignRepo, *stubQuestRepo, *stubLocationRepo) {
	campaigns := newStubCampaignRepo()
	quests := newStubQuestRepo()
	locations := newStubLocationRepo()
	svc := service.NewCampaignService(campaigns, quests, locations)
	return NewCampaignHandler(svc), campaigns, quests, locations
}

// ============================================================================
// Tests
// ============================================================================

func TestCampaignHandler_Create(t *testing.T) {
	h, _, _, _ := newCampaignHandler()

	req := withActor(makeJSONRequest(http.MethodPost, "/api/campaigns", map[string]string{
		"name":        "Curse of Strahd",
		"description": "Gothic horror",
	}), testActor)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	body := decodeBody(t, rr)
	campaign, ok := body["campaign"].(map[string]interface{})
	require.True(t, ok, "expected campaign envelope")
	assert.Equal(t, "Curse of Strahd", campaign["name"])
	assert.NotEmpty(t, campaign["_id"])
	assert.NotContains(t, campaign, "ownerId")
	assert.NotContains(t, campaign, "owner_id")
}

func TestCampaignHandler_Create_MissingName(t *testing.T) {
	h, _, _, _ := newCampaignHandler()

	req := withActor(makeJSONRequest(http.MethodPost, "/api/campaigns", map[string]string{
		"description": "no name",
	}), testActor)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
}

func TestCampaignHandler_Create_QuotaExceeded(t *testing.T) {
	h, campaigns, _, _ := newCampaignHandler()
	for i := 0; i < model.FreeCampaignLimit; i++ {
		_ = campaigns.Create(context.Background(), &model.Campaign{
			Name:    fmt.Sprintf("Campaign %d", i),
			OwnerID: testActor.AccountID,
		})
	}

	req := withActor(makeJSONRequest(http.MethodPost, "/api/campaigns", map[string]string{
		"name": "One too many",
	}), testActor)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "https://chronicle.forgo.software/errors/quota-exceeded", body["type"])
}

func TestCampaignHandler_Create_Unauthenticated(t *testing.T) {
	h, _, _, _ := newCampaignHandler()

	req := makeJSONRequest(http.MethodPost, "/api/campaigns", map[string]string{"name": "x"})
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCampaignHandler_List(t *testing.T) {
	h, campaigns, _, _ := newCampaignHandler()
	_ = campaigns.Create(context.Background(), &model.Campaign{Name: "Mine", OwnerID: testActor.AccountID})
	_ = campaigns.Create(context.Background(), &model.Campaign{Name: "Theirs", OwnerID: "account:other"})

	req := withActor(httptest.NewRequest(http.MethodGet, "/api/campaigns", nil), testActor)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	list, ok := body["campaigns"].([]interface{})
	require.True(t, ok, "expected campaigns envelope")
	require.Len(t, list, 1)
}

func TestCampaignHandler_Delete(t *testing.T) {
	h, campaigns, quests, _ := newCampaignHandler()
	campaign := &model.Campaign{Name: "Doomed", OwnerID: testActor.AccountID}
	_ = campaigns.Create(context.Background(), campaign)
	_ = quests.Create(context.Background(), &model.Quest{
		Title: "Q1", CampaignID: campaign.ID, OwnerID: testActor.AccountID,
	})

	req := withActor(makeJSONRequest(http.MethodPost, "/api/campaigns/delete", map[string]string{
		"campaignId": campaign.ID,
	}), testActor)
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.NotEmpty(t, body["message"])
	assert.Empty(t, quests.quests)
}

func TestCampaignHandler_Delete_MissingID(t *testing.T) {
	h, _, _, _ := newCampaignHandler()

	req := withActor(makeJSONRequest(http.MethodPost, "/api/campaigns/delete", map[string]string{}), testActor)
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCampaignHandler_Delete_NotFound(t *testing.T) {
	h, campaigns, _, _ := newCampaignHandler()
	foreign := &model.Campaign{Name: "Theirs", OwnerID: "account:other"}
	_ = campaigns.Create(context.Background(), foreign)

	// Missing and foreign-owned campaigns produce identical responses.
	for _, id := range []string{"campaign:999", foreign.ID} {
		req := withActor(makeJSONRequest(http.MethodPost, "/api/campaigns/delete", map[string]string{
			"campaignId": id,
		}), testActor)
		rr := httptest.NewRecorder()
		h.Delete(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	}
}

func TestCampaignHandler_Delete_PartialFailure(t *testing.T) {
	h, campaigns, _, _ := newCampaignHandler()
	campaign := &model.Campaign{Name: "Stuck", OwnerID: testActor.AccountID}
	_ = campaigns.Create(context.Background(), campaign)
	campaigns.deleteErr = fmt.Errorf("connection reset")

	req := withActor(makeJSONRequest(http.MethodPost, "/api/campaigns/delete", map[string]string{
		"campaignId": campaign.ID,
	}), testActor)
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "https://chronicle.forgo.software/errors/partial-delete", body["type"])
}
