package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/forgo/chronicle/api/internal/model"
)

func setupQuestService(t *testing.T) (*QuestService, *mockCampaignRepo, *mockQuestRepo) {
	t.Helper()

	campaignRepo := newMockCampaignRepo()
	questRepo := newMockQuestRepo()
	svc := NewQuestService(campaignRepo, questRepo)
	return svc, campaignRepo, questRepo
}

func TestQuestService_Create_Success(t *testing.T) {
	svc, campaignRepo, questRepo := setupQuestService(t)
	ctx := context.Background()

	campaign := seedCampaign(t, campaignRepo, freeActor.AccountID, "Homebrew")

	quest, err := svc.CreateQuest(ctx, freeActor, CreateQuestRequest{
		CampaignID: campaign.ID,
		Title:      "Rescue the blacksmith",
		Status:     "active",
		Reward:     "200 gold",
	})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}
	if quest.Status != model.QuestStatusActive {
		t.Errorf("expected status active, got %s", quest.Status)
	}
	if quest.CampaignID != campaign.ID {
		t.Errorf("expected campaign %s, got %s", campaign.ID, quest.CampaignID)
	}
	if quest.OwnerID != freeActor.AccountID {
		t.Errorf("expected owner %s, got %s", freeActor.AccountID, quest.OwnerID)
	}
	if _, ok := questRepo.quests[quest.ID]; !ok {
		t.Error("quest was not stored in repository")
	}
}

func TestQuestService_Create_DefaultStatus(t *testing.T) {
	svc, campaignRepo, _ := setupQuestService(t)
	ctx := context.Background()

	campaign := seedCampaign(t, campaignRepo, freeActor.AccountID, "Homebrew")

	quest, err := svc.CreateQuest(ctx, freeActor, CreateQuestRequest{
		CampaignID: campaign.ID,
		Title:      "Find the lost mine",
	})
	if err != nil {
		t.Fatalf("CreateQuest failed: %v", err)
	}
	if quest.Status != model.QuestStatusPlanned {
		t.Errorf("expected default status planned, got %s", quest.Status)
	}
}

func TestQuestService_Create_Validation(t *testing.T) {
	svc, campaignRepo, _ := setupQuestService(t)
	ctx := context.Background()

	campaign := seedCampaign(t, campaignRepo, freeActor.AccountID, "Homebrew")

	tests := []struct {
		name    string
		req     CreateQuestRequest
		wantErr error
	}{
		{"missing campaign", CreateQuestRequest{Title: "ok"}, ErrQuestFieldsRequired},
		{"missing title", CreateQuestRequest{CampaignID: campaign.ID}, ErrQuestFieldsRequired},
		{"whitespace title", CreateQuestRequest{CampaignID: campaign.ID, Title: "  "}, ErrQuestFieldsRequired},
		{"title too long", CreateQuestRequest{CampaignID: campaign.ID, Title: strings.Repeat("a", model.MaxQuestTitleLength+1)}, ErrQuestTitleTooLong},
		{"invalid status", CreateQuestRequest{CampaignID: campaign.ID, Title: "ok", Status: "paused"}, ErrQuestStatusInvalid},
		{"reward too long", CreateQuestRequest{CampaignID: campaign.ID, Title: "ok", Reward: strings.Repeat("a", model.MaxQuestRewardLength+1)}, ErrQuestRewardTooLong},
		{"notes too long", CreateQuestRequest{CampaignID: campaign.ID, Title: "ok", Notes: strings.Repeat("a", model.MaxQuestNotesLength+1)}, ErrQuestNotesTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateQuest(ctx, freeActor, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestQuestService_Create_ForeignCampaign(t *testing.T) {
	svc, campaignRepo, questRepo := setupQuestService(t)
	ctx := context.Background()

	foreign := seedCampaign(t, campaignRepo, "account:other", "Theirs")

	_, err := svc.CreateQuest(ctx, freeActor, CreateQuestRequest{
		CampaignID: foreign.ID,
		Title:      "Sneaky insert",
	})
	if !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("expected ErrCampaignNotFound, got %v", err)
	}
	if len(questRepo.quests) != 0 {
		t.Error("no quest may be written into a foreign campaign")
	}
}

func TestQuestService_List_ForeignCampaign(t *testing.T) {
	svc, campaignRepo, questRepo := setupQuestService(t)
	ctx := context.Background()

	foreign := seedCampaign(t, campaignRepo, "account:other", "Theirs")
	questRepo.Create(ctx, &model.Quest{Title: "Secret", CampaignID: foreign.ID, OwnerID: "account:other"})

	_, err := svc.ListQuests(ctx, freeActor, foreign.ID)
	if !errors.Is(err, ErrCampaignNotFound) {
		t.Errorf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestQuestService_List_Empty(t *testing.T) {
	svc, campaignRepo, _ := setupQuestService(t)
	ctx := context.Background()

	campaign := seedCampaign(t, campaignRepo, freeActor.AccountID, "Fresh")

	quests, err := svc.ListQuests(ctx, freeActor, campaign.ID)
	if err != nil {
		t.Fatalf("ListQuests failed: %v", err)
	}
	if len(quests) != 0 {
		t.Errorf("expected no quests, got %d", len(quests))
	}
}

func TestQuestService_Delete_Scoping(t *testing.T) {
	svc, campaignRepo, questRepo := setupQuestService(t)
	ctx := context.Background()

	mine := seedCampaign(t, campaignRepo, freeActor.AccountID, "Mine")
	foreignQuest := &model.Quest{Title: "Theirs", CampaignID: "campaign:x", OwnerID: "account:other"}
	questRepo.Create(ctx, foreignQuest)
	myQuest := &model.Quest{Title: "Mine", CampaignID: mine.ID, OwnerID: freeActor.AccountID}
	questRepo.Create(ctx, myQuest)

	if err := svc.DeleteQuest(ctx, freeActor, "quest:999"); !errors.Is(err, ErrQuestNotFound) {
		t.Errorf("missing quest: expected ErrQuestNotFound, got %v", err)
	}
	if err := svc.DeleteQuest(ctx, freeActor, foreignQuest.ID); !errors.Is(err, ErrQuestNotFound) {
		t.Errorf("foreign quest: expected ErrQuestNotFound, got %v", err)
	}
	if _, ok := questRepo.quests[foreignQuest.ID]; !ok {
		t.Error("foreign quest must survive the delete attempt")
	}
	if err := svc.DeleteQuest(ctx, freeActor, myQuest.ID); err != nil {
		t.Fatalf("DeleteQuest failed: %v", err)
	}
	if _, ok := questRepo.quests[myQuest.ID]; ok {
		t.Error("owned quest was not deleted")
	}
}
