package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antagonisthq/openprovider-go/errors"
	"github.com/antagonisthq/openprovider-go/models"
	"github.com/antagonisthq/openprovider-go/testutils"
)

func TestDomain_String_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<domain><name>example</name><extension>com</extension></domain>`)
	d := models.NewDomain(doc.Root())

	assert.Equal(t, "example.com", d.String())
}

func TestPhone_String_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<phone>
		<countryCode>31</countryCode>
		<areaCode>20</areaCode>
		<subscriberNumber>1234567</subscriberNumber>
	</phone>`)
	p := models.NewPhone(doc.Root())

	assert.Equal(t, "31 20 1234567", p.String())
}

func TestName_String_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		xml      string
		expected string
	}{
		{
			name:     "with prefix",
			xml:      `<name><firstName>John</firstName><prefix>van de</prefix><lastName>Tester</lastName></name>`,
			expected: "John van de Tester",
		},
		{
			name:     "without prefix",
			xml:      `<name><firstName>John</firstName><lastName>Tester</lastName></name>`,
			expected: "John Tester",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := testutils.ParseXML(t, tt.xml)
			assert.Equal(t, tt.expected, models.NewName(doc.Root()).String())
		})
	}
}

func TestCustomer_SubModels_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<customer>
		<handle>AB123456</handle>
		<name><firstName>John</firstName><lastName>Tester</lastName></name>
		<address><street>Mainstreet</street><city>Amsterdam</city></address>
		<phone>
			<countryCode>31</countryCode>
			<areaCode>20</areaCode>
			<subscriberNumber>1234567</subscriberNumber>
		</phone>
	</customer>`)
	c := models.NewCustomer(doc.Root())

	assert.Equal(t, "John Tester", c.Name().String())
	assert.Equal(t, "31 20 1234567", c.Phone().String())

	city, err := c.Address().GetString("city")
	require.NoError(t, err)
	assert.Equal(t, "Amsterdam", city)
}

func TestCustomer_SubModel_ReflectsReplacedChild(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<customer>
		<phone>
			<countryCode>31</countryCode>
			<areaCode>20</areaCode>
			<subscriberNumber>1234567</subscriberNumber>
		</phone>
	</customer>`)
	c := models.NewCustomer(doc.Root())

	assert.Equal(t, "31 20 1234567", c.Phone().String())

	// Replace the phone element behind the model's back.
	elem := c.Elem()
	elem.RemoveChild(elem.SelectElement("phone"))
	replacement := elem.CreateElement("phone")
	replacement.CreateElement("countryCode").SetText("49")
	replacement.CreateElement("areaCode").SetText("30")
	replacement.CreateElement("subscriberNumber").SetText("7654321")

	assert.Equal(t, "49 30 7654321", c.Phone().String(), "submodel access must re-read the tree")
}

func TestCustomer_SubModel_AbsentChild(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<customer><handle>AB123456</handle></customer>`)
	c := models.NewCustomer(doc.Root())

	fax := c.Fax()
	require.NotNil(t, fax)
	assert.Nil(t, fax.Elem())

	_, err := fax.Get("country_code")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrAttributeNotFound))
}

func TestReseller_SubModels_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<reseller>
		<companyName>Antagonist</companyName>
		<address><city>Zwolle</city></address>
		<phone><countryCode>31</countryCode><areaCode>38</areaCode><subscriberNumber>4533355</subscriberNumber></phone>
		<fax><countryCode>31</countryCode><areaCode>38</areaCode><subscriberNumber>4533356</subscriberNumber></fax>
	</reseller>`)
	r := models.NewReseller(doc.Root())

	assert.Equal(t, "31 38 4533355", r.Phone().String())
	assert.Equal(t, "31 38 4533356", r.Fax().String())

	city, err := r.Address().GetString("city")
	require.NoError(t, err)
	assert.Equal(t, "Zwolle", city)
}

func TestNameserver_Fields_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<item><name>ns1.example.com</name><ip>192.0.2.10</ip></item>`)
	ns := models.NewNameserver(doc.Root())

	ip, err := ns.GetString("ip")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", ip)
	assert.False(t, ns.Has("ip6"))
}

func TestRecord_Fields_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<item><type>MX</type><value>mail.example.com</value><prio>10</prio><ttl>3600</ttl></item>`)
	rec := models.NewRecord(doc.Root())

	typ, err := rec.GetString("type")
	require.NoError(t, err)
	assert.Equal(t, "MX", typ)

	prio, err := rec.GetString("prio")
	require.NoError(t, err)
	assert.Equal(t, "10", prio)
}

func TestSSLProduct_Fields_Success(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseXML(t, `<product>
		<id>12</id>
		<brandName>Comodo</brandName>
		<isWildcardSupported>1</isWildcardSupported>
	</product>`)
	p := models.NewSSLProduct(doc.Root())

	brand, err := p.GetString("brand_name")
	require.NoError(t, err)
	assert.Equal(t, "Comodo", brand)

	wildcard, err := p.GetString("is_wildcard_supported")
	require.NoError(t, err)
	assert.Equal(t, "1", wildcard)
}
