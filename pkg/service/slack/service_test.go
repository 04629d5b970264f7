package slack_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	slackSvc "github.com/opsnexus/opsnexus/pkg/service/slack"
	"github.com/slack-go/slack"
)

func newFakeSlack(t *testing.T) *slackSvc.Service {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		if r.PostFormValue("channel") == "C404" {
			_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"channel":"` + r.PostFormValue("channel") + `","ts":"1710000000.000100"}`))
	})
	mux.HandleFunc("/auth.test", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"team":"ops","user":"digest-bot","team_id":"T1","user_id":"U1"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return slackSvc.New("xoxb-test", slack.OptionAPIURL(srv.URL+"/"))
}

func TestServicePostMessage(t *testing.T) {
	svc := newFakeSlack(t)
	ctx := context.Background()

	channel, ts, err := svc.PostMessage(ctx, "C0123", slack.MsgOptionText("hello", false))
	gt.NoError(t, err)
	gt.Equal(t, "C0123", channel)
	gt.Equal(t, "1710000000.000100", ts)

	_, _, err = svc.PostMessage(ctx, "C404", slack.MsgOptionText("hello", false))
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to post message")
}

func TestServiceAuthTest(t *testing.T) {
	resp, err := newFakeSlack(t).AuthTestContext(context.Background())
	gt.NoError(t, err)
	gt.Equal(t, "ops", resp.Team)
	gt.Equal(t, "digest-bot", resp.User)
}
