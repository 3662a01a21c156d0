// Package notify renders the notification messages produced for one intake
// submission: the operator alert and the client-facing confirmation. Rendering
// is pure: given the same submission and clock reading, the output is
// byte-identical.
package notify

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rapidsites/intake/internal/form"
	"github.com/rapidsites/intake/internal/mailer"
)

const (
	brandName     = "Rapid Sites"
	depositAmount = "R2,750"
	balanceAmount = "R2,750 (on completion)"
)

// Tags attached to outbound messages for provider-side categorization.
const (
	TagOperator     = "intake-operator"
	TagConfirmation = "intake-confirmation"
)

// Operator renders the mandatory operator notification. The payment
// reference combines the business name with the current UTC calendar date.
func Operator(sub form.Submission, now time.Time) mailer.Message {
	return mailer.Message{
		Subject: fmt.Sprintf("NEW CLIENT FORM SUBMISSION - %s - %s", brandName, sub.BusinessName),
		HTML:    operatorHTML(sub, now),
		Text:    operatorText(sub, now),
		Tag:     TagOperator,
	}
}

// paymentReference is quoted on both messages so the deposit can be matched
// to the submission, e.g. "Acme Plumbing-2026-08-30".
func paymentReference(sub form.Submission, now time.Time) string {
	return sub.BusinessName + "-" + now.UTC().Format("2006-01-02")
}

func operatorHTML(sub form.Submission, now time.Time) string {
	esc := html.EscapeString
	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>\n", label, esc(value))
	}
	section := func(title string) {
		b.WriteString("<hr>\n")
		fmt.Fprintf(&b, "<h3>===== %s =====</h3>\n", title)
	}

	b.WriteString("<p>🚨 PRIORITY: NEW PAID CLIENT FORM SUBMISSION</p>\n")

	section("BUSINESS INFORMATION")
	row("Business", sub.BusinessName)
	row("Contact", sub.ContactName)
	row("Email", sub.Email)
	row("Phone", sub.Phone)
	row("WhatsApp", form.OrNA(sub.WhatsApp))
	row("Location", sub.Location)

	section("AI RESEARCH INPUTS")
	row("Industry", sub.Industry)
	row("Business Description", sub.BusinessDescription)
	row("Services", sub.Services)
	row("Target Customers", sub.TargetCustomers)
	row("Business Hours", form.OrNA(sub.BusinessHours))
	row("Brand Colors", form.OrNA(sub.BrandColors))
	row("Brand Tone", form.OrNA(sub.BusinessTone))

	section("CURRENT SETUP ANALYSIS")
	row("Current Website", form.OrNA(sub.CurrentWebsite))
	row("Domain Status", sub.HasDomain)
	row("Domain Name", form.OrNA(sub.DomainName))
	row("Hosting Status", sub.HasHosting)

	section("WEBSITE REQUIREMENTS")
	row("Primary Goals", form.JoinOrNA(sub.Goals))
	row("Requested Features", form.JoinOrNA(sub.Features))
	row("Special Content", form.OrNA(sub.SpecialContent))
	row("Competitive Advantage", form.OrNA(sub.CompetitiveAdvantage))

	section("PAYMENT STATUS")
	fmt.Fprintf(&b, "<p><strong>AWAITING DEPOSIT:</strong> %s</p>\n", depositAmount)
	fmt.Fprintf(&b, "<p><strong>BALANCE DUE:</strong> %s</p>\n", balanceAmount)
	b.WriteString("<p>Banking details sent to client ✅</p>\n")

	section("IMMEDIATE ACTIONS")
	b.WriteString("<ol>\n")
	b.WriteString("<li>📧 SEND BANKING DETAILS EMAIL</li>\n")
	b.WriteString("<li>🤖 START AI RESEARCH using prompts above</li>\n")
	b.WriteString("<li>⏰ AWAIT PAYMENT CONFIRMATION</li>\n")
	b.WriteString("<li>🏗️ BEGIN DEVELOPMENT within 24hrs of payment</li>\n")
	b.WriteString("<li>📋 TARGET COMPLETION: 48hrs from payment</li>\n")
	b.WriteString("</ol>\n")

	row("Reference for payment", paymentReference(sub, now))
	row("Source", form.OrNA(sub.Source))
	row("Additional Notes", form.OrNA(sub.AdditionalNotes))

	return b.String()
}

func operatorText(sub form.Submission, now time.Time) string {
	var b strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}
	section := func(title string) {
		fmt.Fprintf(&b, "\n===== %s =====\n", title)
	}

	b.WriteString("PRIORITY: NEW PAID CLIENT FORM SUBMISSION\n")

	section("BUSINESS INFORMATION")
	row("Business", sub.BusinessName)
	row("Contact", sub.ContactName)
	row("Email", sub.Email)
	row("Phone", sub.Phone)
	row("WhatsApp", form.OrNA(sub.WhatsApp))
	row("Location", sub.Location)

	section("AI RESEARCH INPUTS")
	row("Industry", sub.Industry)
	row("Business Description", sub.BusinessDescription)
	row("Services", sub.Services)
	row("Target Customers", sub.TargetCustomers)
	row("Business Hours", form.OrNA(sub.BusinessHours))
	row("Brand Colors", form.OrNA(sub.BrandColors))
	row("Brand Tone", form.OrNA(sub.BusinessTone))

	section("CURRENT SETUP ANALYSIS")
	row("Current Website", form.OrNA(sub.CurrentWebsite))
	row("Domain Status", sub.HasDomain)
	row("Domain Name", form.OrNA(sub.DomainName))
	row("Hosting Status", sub.HasHosting)

	section("WEBSITE REQUIREMENTS")
	row("Primary Goals", form.JoinOrNA(sub.Goals))
	row("Requested Features", form.JoinOrNA(sub.Features))
	row("Special Content", form.OrNA(sub.SpecialContent))
	row("Competitive Advantage", form.OrNA(sub.CompetitiveAdvantage))

	section("PAYMENT STATUS")
	row("AWAITING DEPOSIT", depositAmount)
	row("BALANCE DUE", balanceAmount)
	b.WriteString("Banking details sent to client\n")

	section("IMMEDIATE ACTIONS")
	b.WriteString("1. SEND BANKING DETAILS EMAIL\n")
	b.WriteString("2. START AI RESEARCH using prompts above\n")
	b.WriteString("3. AWAIT PAYMENT CONFIRMATION\n")
	b.WriteString("4. BEGIN DEVELOPMENT within 24hrs of payment\n")
	b.WriteString("5. TARGET COMPLETION: 48hrs from payment\n\n")

	row("Reference for payment", paymentReference(sub, now))
	row("Source", form.OrNA(sub.Source))
	row("Additional Notes", form.OrNA(sub.AdditionalNotes))

	return b.String()
}

// Confirmation renders the optional client-facing confirmation. Its template
// is independent of the operator message: fixed banking and next-steps
// content addressed to the submitter.
func Confirmation(sub form.Submission, now time.Time) mailer.Message {
	esc := html.EscapeString
	var b strings.Builder

	fmt.Fprintf(&b, "<p>Hi %s,</p>\n", esc(sub.ContactName))
	fmt.Fprintf(&b, "<p>Thanks for choosing %s! We have received the details for <strong>%s</strong> and your new website is in the queue.</p>\n",
		brandName, esc(sub.BusinessName))
	b.WriteString("<h3>Next steps</h3>\n")
	b.WriteString("<ol>\n")
	fmt.Fprintf(&b, "<li>Pay the deposit of <strong>%s</strong> using the banking details below.</li>\n", depositAmount)
	b.WriteString("<li>We start research and design within 24 hours of payment.</li>\n")
	b.WriteString("<li>Your site goes live within 48 hours of payment, with the balance due on completion.</li>\n")
	b.WriteString("</ol>\n")
	b.WriteString("<h3>Banking details</h3>\n")
	fmt.Fprintf(&b, "<p>Account name: %s<br>Bank: FNB<br>Account type: Cheque<br>Account number: 631 142 090 11<br>Branch code: 250655</p>\n", brandName)
	fmt.Fprintf(&b, "<p><strong>Payment reference:</strong> %s</p>\n", esc(paymentReference(sub, now)))
	fmt.Fprintf(&b, "<p>Questions? Just reply to this email.</p>\n<p>— The %s team</p>\n", brandName)

	var t strings.Builder
	fmt.Fprintf(&t, "Hi %s,\n\n", sub.ContactName)
	fmt.Fprintf(&t, "Thanks for choosing %s! We have received the details for %s and your new website is in the queue.\n\n",
		brandName, sub.BusinessName)
	t.WriteString("Next steps:\n")
	fmt.Fprintf(&t, "1. Pay the deposit of %s using the banking details below.\n", depositAmount)
	t.WriteString("2. We start research and design within 24 hours of payment.\n")
	t.WriteString("3. Your site goes live within 48 hours of payment, with the balance due on completion.\n\n")
	t.WriteString("Banking details:\n")
	fmt.Fprintf(&t, "Account name: %s\nBank: FNB\nAccount type: Cheque\nAccount number: 631 142 090 11\nBranch code: 250655\n", brandName)
	fmt.Fprintf(&t, "Payment reference: %s\n\n", paymentReference(sub, now))
	fmt.Fprintf(&t, "Questions? Just reply to this email.\n— The %s team\n", brandName)

	return mailer.Message{
		To:      sub.Email,
		Subject: fmt.Sprintf("%s - We received your details", brandName),
		HTML:    b.String(),
		Text:    t.String(),
		Tag:     TagConfirmation,
	}
}
