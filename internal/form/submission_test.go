package form_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapidsites/intake/internal/form"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("full body", func(t *testing.T) {
		t.Parallel()

		values, err := url.ParseQuery("business_name=Acme+Plumbing&contact_name=Jo+Smith" +
			"&email=jo%40acme.test&phone=%2B27821234567&whatsapp=%2B27821234567" +
			"&location=Cape+Town&industry=Plumbing&business_description=24%2F7+plumbing" +
			"&services=Geysers%2C+leaks&target_customers=Homeowners" +
			"&business_hours=Mon-Fri+8-5&brand_colors=Blue&business_tone=Friendly" +
			"&current_website=https%3A%2F%2Fold.acme.test&has_domain=yes&domain_name=acme.test" +
			"&has_hosting=no&goals[]=More+leads&goals[]=Look+professional" +
			"&features[]=Contact+form&special_content=Certifications" +
			"&competitive_advantage=Fastest+callout&source=Google&additional_notes=None")
		require.NoError(t, err)

		sub := form.Decode(values)

		assert.Equal(t, "Acme Plumbing", sub.BusinessName)
		assert.Equal(t, "Jo Smith", sub.ContactName)
		assert.Equal(t, "jo@acme.test", sub.Email)
		assert.Equal(t, "+27821234567", sub.Phone)
		assert.Equal(t, "Cape Town", sub.Location)
		assert.Equal(t, "24/7 plumbing", sub.BusinessDescription)
		assert.Equal(t, []string{"More leads", "Look professional"}, sub.Goals)
		assert.Equal(t, []string{"Contact form"}, sub.Features)
		assert.Equal(t, "Fastest callout", sub.CompetitiveAdvantage)
		assert.False(t, sub.IsSpam())
	})

	t.Run("decoding is total over missing fields", func(t *testing.T) {
		t.Parallel()

		sub := form.Decode(url.Values{})

		assert.Empty(t, sub.BusinessName)
		assert.Empty(t, sub.Email)
		assert.Empty(t, sub.CurrentWebsite)
		assert.Nil(t, sub.Goals)
		assert.Nil(t, sub.Features)
		assert.False(t, sub.IsSpam())
	})

	t.Run("single occurrence keeps list semantics", func(t *testing.T) {
		t.Parallel()

		sub := form.Decode(url.Values{"goals[]": {"More leads"}})

		require.Len(t, sub.Goals, 1)
		assert.Equal(t, "More leads", sub.Goals[0])
	})

	t.Run("list order preserved", func(t *testing.T) {
		t.Parallel()

		sub := form.Decode(url.Values{"features[]": {"c", "a", "b"}})

		assert.Equal(t, []string{"c", "a", "b"}, sub.Features)
	})

	t.Run("honeypot detected", func(t *testing.T) {
		t.Parallel()

		sub := form.Decode(url.Values{form.HoneypotField: {"http://spam.example"}})

		assert.True(t, sub.IsSpam())
	})
}

func TestJoinOrNA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "empty list", values: nil, want: "N/A"},
		{name: "single value", values: []string{"a"}, want: "a"},
		{name: "multiple values joined", values: []string{"a", "b"}, want: "a, b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, form.JoinOrNA(tt.values))
		})
	}
}

func TestOrNA(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "N/A", form.OrNA(""))
	assert.Equal(t, "value", form.OrNA("value"))
}
