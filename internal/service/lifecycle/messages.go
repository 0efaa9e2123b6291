package lifecycle

import (
	"fmt"

	"github.com/shopspring/decimal"
	"partner/internal/entities"
	"partner/internal/pkg/prompt"
)

func collectedPrompt(due decimal.Decimal) prompt.Prompt {
	return prompt.Prompt{
		Kind: prompt.KindCollected,
		Message: fmt.Sprintf(
			"Cash on Delivery\n\nCollect ₹%s from customer.\n\nEnter amount actually collected (numbers only):",
			due.StringFixed(2),
		),
	}
}

func shortfallPrompt(shortfall decimal.Decimal) prompt.Prompt {
	return prompt.Prompt{
		Kind:    prompt.KindShortfall,
		Message: fmt.Sprintf("Short by ₹%s.\nContinue anyway? (restaurant will be notified)", shortfall.StringFixed(2)),
	}
}

func cashDeliveryPrompt(rec entities.CashReconciliation) prompt.Prompt {
	msg := fmt.Sprintf("Collected: ₹%s\nOrder total: ₹%s", rec.Collected.StringFixed(2), rec.Due.StringFixed(2))
	if rec.Tip.IsPositive() {
		msg += fmt.Sprintf("\nTip: ₹%s", rec.Tip.StringFixed(2))
	}
	if rec.HasShortfall() {
		msg += fmt.Sprintf("\nShort: ₹%s", rec.Shortfall.StringFixed(2))
	}
	return prompt.Prompt{
		Kind:    prompt.KindDelivery,
		Message: msg + "\n\nConfirm delivery?",
	}
}

func prepaidDeliveryPrompt() prompt.Prompt {
	return prompt.Prompt{
		Kind:    prompt.KindDelivery,
		Message: "Payment was already received online.\nConfirm delivery?",
	}
}

func statusPrompt(target entities.PartnerStatus) prompt.Prompt {
	var msg string
	switch target {
	case entities.StatusPickedUp:
		msg = "Confirm you have picked up the order from the restaurant?"
	case entities.StatusReachedRestaurant:
		msg = "Have you reached the restaurant?"
	case entities.StatusReachedCustomer:
		msg = "Have you reached the customer location?"
	default:
		msg = fmt.Sprintf("Mark order as %s?", target)
	}
	return prompt.Prompt{Kind: prompt.KindStatus, Message: msg}
}

func cancelPrompt(reason string) prompt.Prompt {
	return prompt.Prompt{
		Kind:    prompt.KindCancel,
		Message: fmt.Sprintf("Cancel this order because: %q?\nThis cannot be undone.", reason),
	}
}

func delayReasonPrompt() prompt.Prompt {
	return prompt.Prompt{
		Kind:    prompt.KindDelayReason,
		Message: fmt.Sprintf("Why is the delivery delayed? (min %d characters)", minDelayReasonLen),
	}
}

func delayPrompt() prompt.Prompt {
	return prompt.Prompt{Kind: prompt.KindDelay, Message: "Report this delay?"}
}
