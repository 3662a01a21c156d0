package notify_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidsites/intake/internal/form"
	"github.com/rapidsites/intake/internal/notify"
)

var fixedTime = time.Date(2026, 8, 30, 13, 45, 0, 0, time.UTC)

func sampleSubmission() form.Submission {
	return form.Submission{
		BusinessName:        "Acme Plumbing",
		ContactName:         "Jo Smith",
		Email:               "jo@acme.test",
		Phone:               "+27821234567",
		Location:            "Cape Town",
		Industry:            "Plumbing",
		BusinessDescription: "24/7 emergency plumbing",
		Services:            "Geysers, leaks",
		TargetCustomers:     "Homeowners",
		HasDomain:           "yes",
		DomainName:          "acme.test",
		HasHosting:          "no",
		Goals:               []string{"More leads", "Look professional"},
		Features:            []string{"Contact form"},
		Source:              "Google",
	}
}

func TestOperator(t *testing.T) {
	t.Parallel()

	t.Run("subject embeds business name", func(t *testing.T) {
		t.Parallel()

		msg := notify.Operator(sampleSubmission(), fixedTime)
		assert.Equal(t, "NEW CLIENT FORM SUBMISSION - Rapid Sites - Acme Plumbing", msg.Subject)
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		t.Parallel()

		first := notify.Operator(sampleSubmission(), fixedTime)
		second := notify.Operator(sampleSubmission(), fixedTime)

		assert.Equal(t, first.Subject, second.Subject)
		assert.Equal(t, first.HTML, second.HTML)
		assert.Equal(t, first.Text, second.Text)
	})

	t.Run("payment reference combines business name and UTC date", func(t *testing.T) {
		t.Parallel()

		msg := notify.Operator(sampleSubmission(), fixedTime)

		assert.Contains(t, msg.HTML, "Acme Plumbing-2026-08-30")
		assert.Contains(t, msg.Text, "Reference for payment: Acme Plumbing-2026-08-30")
	})

	t.Run("clock normalized to UTC", func(t *testing.T) {
		t.Parallel()

		// 05:30 on Sep 1 in UTC+10 is still Aug 31 in UTC.
		local := time.Date(2026, 9, 1, 5, 30, 0, 0, time.FixedZone("UTC+10", 10*3600))
		msg := notify.Operator(sampleSubmission(), local)

		assert.Contains(t, msg.Text, "Acme Plumbing-2026-08-31")
	})

	t.Run("sections appear in fixed order", func(t *testing.T) {
		t.Parallel()

		msg := notify.Operator(sampleSubmission(), fixedTime)

		sections := []string{
			"BUSINESS INFORMATION",
			"AI RESEARCH INPUTS",
			"CURRENT SETUP ANALYSIS",
			"WEBSITE REQUIREMENTS",
			"PAYMENT STATUS",
			"IMMEDIATE ACTIONS",
		}
		last := -1
		for _, section := range sections {
			idx := indexOf(t, msg.HTML, section)
			require.Greater(t, idx, last, "section %q out of order", section)
			last = idx
		}
	})

	t.Run("list fields joined with comma", func(t *testing.T) {
		t.Parallel()

		msg := notify.Operator(sampleSubmission(), fixedTime)

		assert.Contains(t, msg.HTML, "More leads, Look professional")
		assert.Contains(t, msg.HTML, "Contact form")
	})

	t.Run("missing optional fields render as N/A", func(t *testing.T) {
		t.Parallel()

		sub := sampleSubmission()
		sub.CurrentWebsite = ""
		sub.SpecialContent = ""
		sub.Goals = nil
		msg := notify.Operator(sub, fixedTime)

		assert.Contains(t, msg.HTML, "<strong>Current Website:</strong> N/A")
		assert.Contains(t, msg.HTML, "<strong>Special Content:</strong> N/A")
		assert.Contains(t, msg.HTML, "<strong>Primary Goals:</strong> N/A")
	})

	t.Run("user input HTML-escaped", func(t *testing.T) {
		t.Parallel()

		sub := sampleSubmission()
		sub.BusinessName = `<script>alert("x")</script>`
		msg := notify.Operator(sub, fixedTime)

		assert.NotContains(t, msg.HTML, "<script>")
		assert.Contains(t, msg.HTML, "&lt;script&gt;")
	})
}

func TestConfirmation(t *testing.T) {
	t.Parallel()

	t.Run("addressed to the submitter", func(t *testing.T) {
		t.Parallel()

		msg := notify.Confirmation(sampleSubmission(), fixedTime)

		assert.Equal(t, "jo@acme.test", msg.To)
		assert.Contains(t, msg.HTML, "Hi Jo Smith,")
		assert.Contains(t, msg.HTML, "Acme Plumbing")
	})

	t.Run("contains banking details and deposit amount", func(t *testing.T) {
		t.Parallel()

		msg := notify.Confirmation(sampleSubmission(), fixedTime)

		assert.Contains(t, msg.HTML, "Banking details")
		assert.Contains(t, msg.HTML, "R2,750")
		assert.Contains(t, msg.Text, "Payment reference: Acme Plumbing-2026-08-30")
	})

	t.Run("independent of the operator template", func(t *testing.T) {
		t.Parallel()

		msg := notify.Confirmation(sampleSubmission(), fixedTime)

		assert.NotContains(t, msg.HTML, "AI RESEARCH INPUTS")
		assert.NotContains(t, msg.HTML, "IMMEDIATE ACTIONS")
	})
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "%q not found", needle)
	return idx
}
