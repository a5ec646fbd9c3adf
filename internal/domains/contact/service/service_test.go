package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"autocare/config"
	"autocare/infras/kafka"
	kafkaMocks "autocare/infras/kafka/mocks"
	"autocare/infras/otel/mocks"
	contactMocks "autocare/internal/domains/contact/mocks"
	"autocare/internal/domains/contact/model"
	"autocare/internal/domains/contact/model/dto"
	"autocare/internal/domains/contact/service"
	"autocare/shared/cache"
	cacheMocks "autocare/shared/cache/mocks"
	"autocare/shared/constant"
	gDto "autocare/shared/dto"
	"autocare/shared/failure"
	gModel "autocare/shared/model"
)

const contactTopic = "autocare.contact"

func newService(t *testing.T) (service.Contact, *contactMocks.MockContact, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := contactMocks.NewMockContact(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Kafka.Topics.Contact = contactTopic

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockKafka), mockRepo, mockKafka
}

func storedContact(status string) model.Contact {
	return model.Contact{
		ID:       "c-1",
		Name:     "Layla",
		Email:    "layla@example.com",
		Subject:  "Quote",
		Message:  "How much is a full service?",
		Status:   status,
		Metadata: gModel.NewMetadata(constant.ContextGuest),
	}
}

func adminCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func TestContact_Create(t *testing.T) {
	svc, mockRepo, mockKafka := newService(t)

	published := make(chan kafka.Event[dto.Event], 1)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, contact model.Contact) error {
			assert.Equal(t, model.StatusNew, contact.Status)

			return nil
		})
	mockKafka.EXPECT().SendMessages(gomock.Any(), contactTopic, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, messages ...kafka.Message) error {
			published <- messages[0].Value.(kafka.Event[dto.Event])

			return nil
		})

	res, err := svc.Create(context.Background(), dto.CreateContactRequest{
		Name:    "Layla",
		Email:   "layla@example.com",
		Subject: "Quote",
		Message: "How much is a full service?",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNew, res.Status)

	select {
	case event := <-published:
		assert.Equal(t, constant.EventContactSubmitted, event.Type)
		assert.Equal(t, res.ID, event.Payload.ID)
		assert.Equal(t, "Quote", event.Payload.Subject)
	case <-time.After(2 * time.Second):
		t.Fatal("contact event was not published")
	}
}

func TestContact_Create_Error(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), dto.CreateContactRequest{Name: "Layla"})
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestContact_GetAll(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := dto.ListFilter{Status: model.StatusNew}

	mockRepo.EXPECT().Count(gomock.Any(), filter.FilterGroup()).Return(1, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), params, filter.FilterGroup()).Return([]model.Contact{storedContact(model.StatusNew)}, nil)

	page, err := svc.GetAll(adminCtx(), params, filter)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Layla", page.Data[0].Name)
}

func TestContact_Get(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedContact(model.StatusRead), nil)
	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Contact{}, nil)

	res, err := svc.Get(adminCtx(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRead, res.Status)

	_, err = svc.Get(adminCtx(), "c-2")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestContact_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		stored     *model.Contact
		wantUpdate bool
		wantCode   int
	}{
		{name: "mark read", status: model.StatusRead, stored: ptr(storedContact(model.StatusNew)), wantUpdate: true},
		{name: "unchanged", status: model.StatusNew, stored: ptr(storedContact(model.StatusNew))},
		{name: "invalid status", status: "archived", wantCode: http.StatusBadRequest},
		{name: "missing", status: model.StatusReplied, stored: &model.Contact{}, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newService(t)

			if tt.stored != nil {
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(*tt.stored, nil)
			}

			if tt.wantUpdate {
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, tt.status, fields[model.FieldStatus])

						return nil
					})
			}

			res, err := svc.UpdateStatus(adminCtx(), dto.UpdateStatusRequest{Status: tt.status}, "c-1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, res.Status)
		})
	}
}

func TestContact_Delete(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, svc.Delete(adminCtx(), "c-1"))

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(adminCtx(), "c-2")))
}

func ptr[T any](v T) *T {
	return &v
}
