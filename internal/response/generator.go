// Package response turns a classified intent into displayable reply text.
package response

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"BankChat/internal/bank"
	"BankChat/internal/config"
	"BankChat/internal/intent"
	"BankChat/internal/session"
)

// Canned replies for intents that pick uniformly at random. Exported so the
// end-to-end tests can assert membership.
var (
	Greetings = []string{
		fmt.Sprintf("Hello! Welcome to %s. How can I assist you today?", config.BankName),
		"Hi there! I'm here to help with your banking needs. What can I do for you?",
		"Good day! How may I help you with your financial services today?",
	}

	Goodbyes = []string{
		fmt.Sprintf("Thank you for using %s! Have a great day!", config.BankName),
		"Goodbye! Feel free to reach out anytime you need assistance.",
		"Take care! Remember, I'm here 24/7 for your banking needs.",
	}
)

// AuthRequired is returned for any account-data intent on an
// unauthenticated session, before the intent handler runs.
var AuthRequired = fmt.Sprintf(
	"For security purposes, I'll need to verify your identity first. "+
		"Please provide your account number or contact customer service at %s.",
	config.SupportLine,
)

var (
	transferRedirect = fmt.Sprintf(
		"I can help you with transfers. For security, please visit our secure "+
			"online portal or mobile app to complete transfers. You can also call "+
			"our customer service at %s.",
		config.SupportLine,
	)

	loanInfo = "We offer various loan products including:\n" +
		"• Personal loans (5.99% - 15.99% APR)\n" +
		"• Auto loans (3.49% - 7.99% APR)\n" +
		"• Home mortgages (competitive rates)\n" +
		"Would you like to speak with a loan specialist?"

	investmentAdvice = "Investment advice should be personalized to your financial situation. " +
		"I recommend speaking with one of our certified financial advisors. " +
		"Would you like me to schedule a consultation for you?"

	supportInfo = fmt.Sprintf(
		"I'm here to help! For complex issues, you can:\n"+
			"• Call customer service: %s\n"+
			"• Visit our website: %s\n"+
			"• Chat with a specialist (Mon-Fri 8AM-8PM)\n"+
			"What specific issue can I help you with?",
		config.SupportLine, config.SupportSite,
	)

	unknownReply = "I'm not sure I understand. I can help you with:\n" +
		"• Account balances and transactions\n" +
		"• Loan information\n" +
		"• General banking questions\n" +
		"• Connecting you with customer support\n" +
		"How can I assist you today?"
)

// Generator dispatches a classified intent to its handler. The random
// source is injected so tests can pin the canned choice; the account
// service is injected so the demo backend can be replaced by a live one.
type Generator struct {
	bank bank.AccountService
	rnd  *rand.Rand
}

// NewGenerator builds a Generator. A nil rnd falls back to a clock-seeded
// source; a nil svc falls back to the demo backend.
func NewGenerator(svc bank.AccountService, rnd *rand.Rand) *Generator {
	if svc == nil {
		svc = bank.NewMockService()
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{bank: svc, rnd: rnd}
}

// Generate produces the reply for an intent. The identity gate runs first:
// account data never flows to an unauthenticated session, regardless of the
// extracted entities. Handlers never mutate the session.
func (g *Generator) Generate(in intent.Intent, sess *session.Session, entities map[string]string) string {
	switch in {
	case intent.AccountBalance, intent.TransactionHistory, intent.TransferMoney:
		if !sess.Authenticated {
			return AuthRequired
		}
	}

	switch in {
	case intent.Greeting:
		return g.pick(Greetings)
	case intent.Goodbye:
		return g.pick(Goodbyes)
	case intent.AccountBalance:
		return g.balanceReply(sess)
	case intent.TransactionHistory:
		return g.historyReply(sess)
	case intent.TransferMoney:
		return g.transferReply(entities)
	case intent.LoanInfo:
		return loanInfo
	case intent.InvestmentAdvice:
		return investmentAdvice
	case intent.Support:
		return supportInfo
	default:
		// Unknown and any unmapped intent share the capability summary.
		return unknownReply
	}
}

func (g *Generator) pick(replies []string) string {
	return replies[g.rnd.Intn(len(replies))]
}

func (g *Generator) balanceReply(sess *session.Session) string {
	return fmt.Sprintf(
		"Your current account balance is %s. Is there anything else I can help you with?",
		g.bank.Balance(sess.UserID),
	)
}

func (g *Generator) historyReply(sess *session.Session) string {
	var b strings.Builder
	b.WriteString("Here are your recent transactions:\n")
	for _, txn := range g.bank.RecentTransactions(sess.UserID) {
		fmt.Fprintf(&b, "• %s: %s - %s\n", txn.Date, txn.Description, txn.Amount)
	}
	b.WriteString("Would you like more details about any specific transaction?")
	return b.String()
}

// transferReply accepts the extracted entities but does not use them yet:
// transfers are only initiated on the secure channels, never from chat.
func (g *Generator) transferReply(map[string]string) string {
	return transferRedirect
}
