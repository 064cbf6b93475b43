package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docuvault/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyNewFileDeliversPayload(t *testing.T) {
	received := make(chan notifyPayload, 1)
	extractor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p notifyPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		received <- p
	}))
	t.Cleanup(extractor.Close)

	svc := NewNotifyService(extractor.URL, extractor.URL, time.Second, 2)
	svc.NotifyNewFile(42, "pdf")
	svc.Close()

	select {
	case p := <-received:
		require.Len(t, p.Files, 1)
		assert.Equal(t, int64(42), p.Files[0].FileID)
		assert.Equal(t, "pdf", p.Files[0].FileType)
	case <-time.After(2 * time.Second):
		t.Fatal("extractor never received the notification")
	}
}

func TestNotifyNewFileSwallowsFailures(t *testing.T) {
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	svc := NewNotifyService(deadURL, deadURL, 100*time.Millisecond, 1)

	// must neither panic nor block the caller
	svc.NotifyNewFile(1, "pdf")
	svc.NotifyNewFile(2, "txt")
	svc.Close()
}

func TestSubmitClassificationStatusHandling(t *testing.T) {
	t.Run("non-2xx is a generic error, not unavailable", func(t *testing.T) {
		classifier := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(classifier.Close)

		svc := NewNotifyService(classifier.URL, classifier.URL, time.Second, 1)
		t.Cleanup(svc.Close)

		_, err := svc.SubmitClassification(context.Background(), []FilePayload{{FileID: 1, FileType: "pdf"}})
		require.Error(t, err)

		// the classifier answered, so this is not an unavailability
		var appErr *utils.AppError
		assert.False(t, errors.As(err, &appErr))
	})

	t.Run("connection failure is unavailable", func(t *testing.T) {
		dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		deadURL := dead.URL
		dead.Close()

		svc := NewNotifyService(deadURL, deadURL, time.Second, 1)
		t.Cleanup(svc.Close)

		_, err := svc.SubmitClassification(context.Background(), []FilePayload{{FileID: 1, FileType: "pdf"}})
		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 503, appErr.Status)
	})

	t.Run("success returns body", func(t *testing.T) {
		classifier := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("accepted"))
		}))
		t.Cleanup(classifier.Close)

		svc := NewNotifyService(classifier.URL, classifier.URL, time.Second, 1)
		t.Cleanup(svc.Close)

		body, err := svc.SubmitClassification(context.Background(), []FilePayload{{FileID: 1, FileType: "pdf"}})
		require.NoError(t, err)
		assert.Equal(t, "accepted", body)
	})
}
