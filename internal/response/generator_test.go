package response

import (
	"math/rand"
	"testing"

	"BankChat/internal/entity"
	"BankChat/internal/intent"
	"BankChat/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededGenerator(seed int64) *Generator {
	return NewGenerator(nil, rand.New(rand.NewSource(seed)))
}

func testSession(authenticated bool) *session.Session {
	store := session.NewStore()
	sess, _ := store.GetOrCreate("u1")
	sess.Authenticated = authenticated
	return sess
}

func TestAuthGateBlocksAccountIntents(t *testing.T) {
	g := seededGenerator(1)
	sess := testSession(false)

	// Entities must not bypass the gate.
	entities := map[string]string{
		entity.KeyAmount:        "1,200.50",
		entity.KeyAccountNumber: "1234567890",
	}

	for _, in := range []intent.Intent{
		intent.AccountBalance,
		intent.TransactionHistory,
		intent.TransferMoney,
	} {
		assert.Equal(t, AuthRequired, g.Generate(in, sess, entities), "intent %s", in)
	}
}

func TestAuthGateDoesNotBlockOtherIntents(t *testing.T) {
	g := seededGenerator(1)
	sess := testSession(false)

	reply := g.Generate(intent.LoanInfo, sess, nil)
	assert.NotEqual(t, AuthRequired, reply)
	assert.Contains(t, reply, "Personal loans")
}

func TestBalanceReply(t *testing.T) {
	g := seededGenerator(1)
	sess := testSession(true)

	reply := g.Generate(intent.AccountBalance, sess, nil)
	assert.Equal(t, "Your current account balance is $2,547.83. Is there anything else I can help you with?", reply)
}

func TestTransactionHistoryReply(t *testing.T) {
	g := seededGenerator(1)
	sess := testSession(true)

	want := "Here are your recent transactions:\n" +
		"• Dec 15: Grocery Store - $85.42\n" +
		"• Dec 14: Online Transfer - $200.00\n" +
		"• Dec 13: ATM Withdrawal - $60.00\n" +
		"Would you like more details about any specific transaction?"

	assert.Equal(t, want, g.Generate(intent.TransactionHistory, sess, nil))
}

func TestTransferReplyIgnoresEntities(t *testing.T) {
	g := seededGenerator(1)
	sess := testSession(true)

	withEntities := g.Generate(intent.TransferMoney, sess, map[string]string{entity.KeyAmount: "500.00"})
	withoutEntities := g.Generate(intent.TransferMoney, sess, nil)

	assert.Equal(t, withoutEntities, withEntities)
	assert.Contains(t, withEntities, "secure")
}

func TestCannedRepliesComeFromFixedLists(t *testing.T) {
	g := seededGenerator(42)
	sess := testSession(false)

	require.Len(t, Greetings, 3)
	require.Len(t, Goodbyes, 3)

	for i := 0; i < 20; i++ {
		assert.Contains(t, Greetings, g.Generate(intent.Greeting, sess, nil))
		assert.Contains(t, Goodbyes, g.Generate(intent.Goodbye, sess, nil))
	}
}

func TestCannedChoiceIsDeterministicUnderSeed(t *testing.T) {
	first := seededGenerator(7)
	second := seededGenerator(7)

	for i := 0; i < 10; i++ {
		assert.Equal(t,
			first.Generate(intent.Greeting, testSession(false), nil),
			second.Generate(intent.Greeting, testSession(false), nil),
		)
	}
}

func TestUnknownAndUnmappedIntents(t *testing.T) {
	g := seededGenerator(1)
	sess := testSession(true)

	unknown := g.Generate(intent.Unknown, sess, nil)
	assert.Contains(t, unknown, "I'm not sure I understand")

	// Anything outside the closed set falls through to the same summary.
	assert.Equal(t, unknown, g.Generate(intent.Intent("telepathy"), sess, nil))
}

func TestGenerateDoesNotMutateSession(t *testing.T) {
	g := seededGenerator(1)
	sess := testSession(true)
	sess.LastIntent = intent.Greeting

	g.Generate(intent.AccountBalance, sess, nil)
	g.Generate(intent.Support, sess, nil)

	assert.Equal(t, intent.Greeting, sess.LastIntent)
	assert.True(t, sess.Authenticated)
	assert.Empty(t, sess.Context)
}
