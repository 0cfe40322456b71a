package alerting

import (
	"context"
	"testing"
	"time"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/events"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/alerting/mocks"
	"go.uber.org/mock/gomock"
)

func TestRegenerationListener_RegeneraAposSincronizacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	regenerated := make(chan string, 1)
	service.EXPECT().
		Regenerate(gomock.Any(), "ACC1").
		DoAndReturn(func(_ context.Context, accountID string) (*domain.RegenerationResult, error) {
			regenerated <- accountID
			return &domain.RegenerationResult{Count: 2}, nil
		})

	bus := events.NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewRegenerationListener(bus, service).Start(ctx)

	bus.Publish(events.SyncCompleted{AccountID: "ACC1", Success: true})

	select {
	case accountID := <-regenerated:
		if accountID != "ACC1" {
			t.Fatalf("regeneração disparada para a conta errada: %s", accountID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("regeneração não foi disparada após o evento de sincronização")
	}
}

func TestRegenerationListener_ParaQuandoOContextoCancela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockService(ctrl)

	bus := events.NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	NewRegenerationListener(bus, service).Start(ctx)
	cancel()

	// Dá tempo para a goroutine observar o cancelamento; o evento publicado
	// depois não deve chegar ao serviço.
	time.Sleep(50 * time.Millisecond)
	bus.Publish(events.SyncCompleted{AccountID: "ACC1", Success: true})
	time.Sleep(50 * time.Millisecond)
}
