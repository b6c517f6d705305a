package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gridmate/gridmate/agentlog"
	"github.com/gridmate/gridmate/conversation"
)

func sampleConversation() []conversation.Message {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []conversation.Message{
		{Sender: conversation.SenderUser, Text: "sum column B", Timestamp: ts},
		{
			Sender:    conversation.SenderAssistant,
			Text:      "Try this formula:",
			Formula:   "=SUM(B2:B40)",
			Timestamp: ts.Add(time.Second),
		},
		{
			Sender:    conversation.SenderAssistant,
			Text:      "That range is invalid.",
			Err:       &conversation.MessageError{Message: "range B2:B0 is empty"},
			Timestamp: ts.Add(2 * time.Second),
		},
	}
}

func TestRenderConversationFromStateAlone(t *testing.T) {
	t.Parallel()

	msgs := sampleConversation()
	first := RenderConversation(msgs, false)
	second := RenderConversation(sampleConversation(), false)
	if first != second {
		t.Fatal("equal state must render equally")
	}

	for _, want := range []string{"sum column B", "Try this formula:", "=SUM(B2:B40)", "range B2:B0 is empty"} {
		if !strings.Contains(first, want) {
			t.Errorf("transcript missing %q:\n%s", want, first)
		}
	}
}

func TestRenderConversationShowsPendingResponse(t *testing.T) {
	t.Parallel()

	idle := RenderConversation(sampleConversation(), false)
	busy := RenderConversation(sampleConversation(), true)
	if idle == busy {
		t.Fatal("busy flag should change the transcript")
	}
	if !strings.Contains(busy, "thinking") {
		t.Errorf("busy transcript missing the pending marker:\n%s", busy)
	}
}

func TestRenderAgentLogFromSnapshotAlone(t *testing.T) {
	t.Parallel()

	l := agentlog.New(nil)
	l.SeedSampleData()
	snap := l.Snapshot()

	first := RenderAgentLog(snap)
	second := RenderAgentLog(snap)
	if first != second {
		t.Fatal("equal snapshot must render equally")
	}

	for _, want := range []string{
		"THOUGHTS", "ACTIONS", "EXECUTION STEPS",
		"Read range Sales!A1:D40",
		"Region", "North", // tabular result
		"range is protected by the document owner", // error result
		"Load source data",
	} {
		if !strings.Contains(first, want) {
			t.Errorf("agent view missing %q", want)
		}
	}
}

func TestRenderAgentLogEmpty(t *testing.T) {
	t.Parallel()

	got := RenderAgentLog(agentlog.Snapshot{})
	if !strings.Contains(got, "(none)") {
		t.Errorf("empty sections should say so:\n%s", got)
	}
}

func TestRenderStatus(t *testing.T) {
	t.Parallel()

	chat := RenderStatus(ModeChat, true, false, "Sheet1")
	if !strings.Contains(chat, "CHAT") || !strings.Contains(chat, "thinking") || !strings.Contains(chat, "Sheet1") {
		t.Errorf("chat status incomplete: %q", chat)
	}

	agent := RenderStatus(ModeAgent, false, true, "")
	if !strings.Contains(agent, "AGENT") || !strings.Contains(agent, "paused") {
		t.Errorf("agent status incomplete: %q", agent)
	}
	if strings.Contains(agent, "page:") {
		t.Errorf("empty page should not render: %q", agent)
	}
}
