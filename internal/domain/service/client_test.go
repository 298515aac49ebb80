package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Get(ctx context.Context, endpoint string, query url.Values) (int, []byte, error) {
	args := m.Called(ctx, endpoint, query)
	return args.Int(0), args.Get(1).([]byte), args.Error(2)
}

func newTestClient(transport *MockTransport) *HomeClient {
	return NewHomeClient(transport, zerolog.Nop())
}

const (
	testRootURL    = "http://fritz.test"
	testLoginURL   = testRootURL + "/login_sid.lua"
	testCommandURL = testRootURL + "/webservices/homeautoswitch.lua"
	testSID        = "0a1b2c3d4e5f6789"
)

// Fixture matching a small household: a contact sensor without known
// capabilities, its alert sub-device, two metering switches, a radiator
// valve and a plain button.
const deviceListXML = `<devicelist version="1">
  <device identifier="11960 0089208" id="2000" functionbitmask="8208" fwversion="05.21" manufacturer="AVM" productname="FRITZ!DECT 440">
    <present>1</present>
    <name>Front Door Contact</name>
    <etsiunitinfo><etsideviceid>406</etsideviceid></etsiunitinfo>
  </device>
  <device identifier="11960 0089208-1" id="2001" functionbitmask="8192" fwversion="05.21" manufacturer="AVM" productname="FRITZ!DECT 440">
    <present>1</present>
    <name>Front Door Alert</name>
    <alert><state>0</state></alert>
  </device>
  <device identifier="08761 0000434" id="16" functionbitmask="2944" fwversion="04.26" manufacturer="AVM" productname="FRITZ!DECT 200">
    <present>1</present>
    <name>Living Room Socket</name>
    <switch><state>1</state><mode>manuell</mode><lock>0</lock></switch>
    <powermeter><power>11280</power><energy>80130</energy></powermeter>
    <temperature><celsius>215</celsius><offset>0</offset></temperature>
  </device>
  <device identifier="08761 0000435" id="17" functionbitmask="2944" fwversion="04.26" manufacturer="AVM" productname="FRITZ!DECT 200">
    <present>1</present>
    <name>Desk Socket</name>
    <switch><state>0</state><mode>auto</mode><lock>0</lock></switch>
    <powermeter><power>0</power><energy>20014</energy></powermeter>
    <temperature><celsius>200</celsius><offset>0</offset></temperature>
  </device>
  <device identifier="11959 0154799" id="18" functionbitmask="320" fwversion="05.02" manufacturer="AVM" productname="FRITZ!DECT 301">
    <present>1</present>
    <name>Bedroom Valve</name>
    <temperature><celsius>190</celsius><offset>0</offset></temperature>
    <hkr><tist>38</tist><tsoll>40</tsoll><absenk>32</absenk><komfort>42</komfort></hkr>
  </device>
  <device identifier="11960 0120987" id="19" functionbitmask="32" fwversion="05.21" manufacturer="AVM" productname="FRITZ!DECT 400">
    <present>1</present>
    <name>Hall Button</name>
    <button><lastpressedtimestamp>1693577121</lastpressedtimestamp></button>
  </device>
</devicelist>`

// expectCommand stubs one command-endpoint exchange.
func expectCommand(t *MockTransport, command, body string) *mock.Call {
	return t.On("Get", mock.Anything, testCommandURL, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("switchcmd") == command
	})).Return(http.StatusOK, []byte(body), nil)
}

// openSession walks a client through a successful handshake against the
// mocked transport, including the initial device refresh.
func openSession(t *MockTransport, c *HomeClient) error {
	t.On("Get", mock.Anything, testLoginURL, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("response") == ""
	})).Return(http.StatusOK, []byte(`<SessionInfo><SID>0000000000000000</SID><Challenge>1234567z</Challenge></SessionInfo>`), nil)
	t.On("Get", mock.Anything, testLoginURL, mock.MatchedBy(func(q url.Values) bool {
		return q.Get("response") != ""
	})).Return(http.StatusOK, []byte(`<SessionInfo><SID>`+testSID+`</SID><Challenge>1234567z</Challenge></SessionInfo>`), nil)
	expectCommand(t, "getdevicelistinfos", deviceListXML)
	return c.OpenSession(context.Background(), "gurkensalat", "", testRootURL)
}
