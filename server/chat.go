package main

import (
	"fmt"
	"strings"

	"github.com/calexandrepcjr/cheapskate-fiscal/parser"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReplyKind tells the chat client how a message was handled.
type ReplyKind string

const (
	ReplyEmpty        ReplyKind = "empty"
	ReplyQuestion     ReplyKind = "question"
	ReplyTransaction  ReplyKind = "transaction"
	ReplyUnrecognized ReplyKind = "unrecognized"
)

const (
	questionMessage  = "Pertanyaan diteruskan ke asisten ringkasan."
	unrecognizedHint = `Maaf, saya tidak mengerti. Coba ketik seperti: "Beli kopi 25rb"`
)

// Reply is the answer to one chat message. Transaction is set only for
// ReplyTransaction, Indicator only for ReplyQuestion.
type Reply struct {
	Kind        ReplyKind                 `json:"kind"`
	Message     string                    `json:"message,omitempty"`
	Transaction *parser.ParsedTransaction `json:"transaction,omitempty"`
	Indicator   string                    `json:"indicator,omitempty"`
}

// Route decides what to do with a chat message. Questions are recognized
// before any parsing, so "berapa pengeluaran 50rb?" is never recorded.
func Route(p *parser.Parser, text string) Reply {
	if strings.TrimSpace(text) == "" {
		return Reply{Kind: ReplyEmpty}
	}

	if indicator, ok := p.QueryIndicator(text); ok {
		return Reply{Kind: ReplyQuestion, Message: questionMessage, Indicator: indicator}
	}

	if tx, ok := p.Parse(text); ok {
		return Reply{
			Kind:        ReplyTransaction,
			Message:     confirmation(tx),
			Transaction: &tx,
		}
	}

	return Reply{Kind: ReplyUnrecognized, Message: unrecognizedHint}
}

func confirmation(tx parser.ParsedTransaction) string {
	return fmt.Sprintf(`Oke, saya catat %s untuk "%s". Benar?`, formatIDR(tx.Amount), tx.Category)
}

// formatIDR renders an amount the Indonesian way, e.g. Rp25.000.
func formatIDR(amount int64) string {
	return "Rp" + message.NewPrinter(language.Indonesian).Sprintf("%d", amount)
}
