package slack_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	slackSvc "github.com/secmon-lab/specter/pkg/service/slack"
	"github.com/slack-go/slack"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"API error", slack.SlackErrorResponse{Err: "not_in_channel"}, "not_in_channel"},
		{"wrapped API error", goerr.Wrap(slack.SlackErrorResponse{Err: "missing_scope"}, "lookup"), "missing_scope"},
		{"transport error", errors.New("connection reset"), ""},
		{"nil", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, tc.expected, slackSvc.ErrorCode(tc.err))
		})
	}
}
