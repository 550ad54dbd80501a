// Package intent classifies user utterances into a closed set of banking
// intents by ordered keyword matching.
package intent

import "strings"

// Intent is the closed category assigned to a user utterance.
type Intent string

const (
	Greeting           Intent = "greeting"
	AccountBalance     Intent = "account_balance"
	TransactionHistory Intent = "transaction_history"
	TransferMoney      Intent = "transfer_money"
	LoanInfo           Intent = "loan_info"
	InvestmentAdvice   Intent = "investment_advice"
	Support            Intent = "support"
	Goodbye            Intent = "goodbye"
	Unknown            Intent = "unknown"
)

type keywordSet struct {
	intent   Intent
	keywords []string
}

// Declaration order is the tie-break: when several intents match the same
// utterance, the first one listed here wins. Matching is plain substring
// containment with no word boundaries, so "pay" also fires inside
// "repayment". Both behaviors are load-bearing; reordering this table or
// tightening the matching changes classification.
var keywordSets = []keywordSet{
	{Greeting, []string{"hello", "hi", "hey", "good morning", "good afternoon"}},
	{AccountBalance, []string{"balance", "account balance", "how much", "funds"}},
	{TransactionHistory, []string{"transactions", "history", "statement", "activity"}},
	{TransferMoney, []string{"transfer", "send money", "pay", "wire"}},
	{LoanInfo, []string{"loan", "mortgage", "credit", "borrow"}},
	{InvestmentAdvice, []string{"invest", "portfolio", "stocks", "bonds", "mutual funds"}},
	{Support, []string{"help", "support", "customer service", "problem"}},
	{Goodbye, []string{"bye", "goodbye", "exit", "quit", "thank you"}},
}

// Classify lower-cases the text and returns the first intent any of whose
// keywords occurs anywhere in it. Every input maps to exactly one Intent;
// text matching nothing maps to Unknown.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, set := range keywordSets {
		for _, keyword := range set.keywords {
			if strings.Contains(lower, keyword) {
				return set.intent
			}
		}
	}
	return Unknown
}
