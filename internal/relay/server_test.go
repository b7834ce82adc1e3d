package relay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := NewRegistry()
	coord := NewCoordinator(reg)
	ep := NewEndpoint(coord)
	mux := http.NewServeMux()
	ep.Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(httpURL, path string) string {
	return "ws" + strings.TrimPrefix(httpURL, "http") + path
}

// TestEndToEndFirstPeerGetsEmptyRoster covers spec.md's S1 scenario.
func TestEndToEndFirstPeerGetsEmptyRoster(t *testing.T) {
	srv := startTestServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv.URL, "/server/webrtc"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	sawCookie := false
	for _, c := range resp.Cookies() {
		if c.Name == "peerid" && c.Value != "" {
			sawCookie = true
		}
	}
	if !sawCookie {
		t.Fatal("expected peerid cookie to be set on first connection")
	}

	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(msg), `"type":"peers"`) {
		t.Fatalf("expected peers frame first, got %s", msg)
	}

	_, msg2, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(msg2), `"type":"display-name"`) {
		t.Fatalf("expected display-name frame second, got %s", msg2)
	}
}

// TestEndToEndRelayWithSenderInjection covers spec.md's S2/S3 scenarios: the
// second peer's join is announced, and a spoofed sender field is overwritten
// with the verified originator.
func TestEndToEndRelayWithSenderInjection(t *testing.T) {
	srv := startTestServer(t)

	connA, _, err := websocket.DefaultDialer.Dial(wsURL(srv.URL, "/server/webrtc"), nil)
	if err != nil {
		t.Fatalf("dial A: %v", err)
	}
	defer connA.Close()
	connA.ReadMessage() // peers (empty)
	connA.ReadMessage() // display-name

	connB, _, err := websocket.DefaultDialer.Dial(wsURL(srv.URL, "/server/fallback"), nil)
	if err != nil {
		t.Fatalf("dial B: %v", err)
	}
	defer connB.Close()

	_, joinedMsg, err := connA.ReadMessage()
	if err != nil {
		t.Fatalf("read peer-joined: %v", err)
	}
	if !strings.Contains(string(joinedMsg), `"type":"peer-joined"`) {
		t.Fatalf("expected peer-joined, got %s", joinedMsg)
	}
	var joined struct {
		Peer struct {
			ID string `json:"id"`
		} `json:"peer"`
	}
	if err := json.Unmarshal(joinedMsg, &joined); err != nil {
		t.Fatalf("unmarshal peer-joined: %v", err)
	}
	bID := joined.Peer.ID

	_, bPeersMsg, err := connB.ReadMessage()
	if err != nil {
		t.Fatalf("read B peers: %v", err)
	}
	var bPeers struct {
		Peers []struct {
			ID string `json:"id"`
		} `json:"peers"`
	}
	if err := json.Unmarshal(bPeersMsg, &bPeers); err != nil {
		t.Fatalf("unmarshal B peers: %v", err)
	}
	if len(bPeers.Peers) != 1 {
		t.Fatalf("expected B to see exactly one existing peer, got %d", len(bPeers.Peers))
	}
	aID := bPeers.Peers[0].ID
	connB.ReadMessage() // display-name for B

	signal := fmt.Sprintf(`{"type":"signal","to":%q,"sender":"spoof","sdp":"xyz"}`, aID)
	if err := connB.WriteMessage(websocket.TextMessage, []byte(signal)); err != nil {
		t.Fatalf("write signal: %v", err)
	}

	_, relayed, err := connA.ReadMessage()
	if err != nil {
		t.Fatalf("read relayed frame: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(relayed, &got); err != nil {
		t.Fatalf("unmarshal relayed: %v", err)
	}
	if got["to"] != nil {
		t.Fatalf("expected 'to' stripped from relayed frame, got %v", got["to"])
	}
	if got["sender"] != bID {
		t.Fatalf("expected sender overwritten to B's verified id %q, got %v", bID, got["sender"])
	}
	if got["sdp"] != "xyz" {
		t.Fatalf("expected sdp preserved, got %v", got["sdp"])
	}
}

// TestEndToEndReconnectPreservesIdentity covers spec.md's S6 scenario: a
// peer reconnecting with its previously-issued cookie gets back the same
// PeerId and the same derived display name, and no Set-Cookie header is
// sent a second time.
func TestEndToEndReconnectPreservesIdentity(t *testing.T) {
	srv := startTestServer(t)

	conn1, resp1, err := websocket.DefaultDialer.Dial(wsURL(srv.URL, "/server/webrtc"), nil)
	if err != nil {
		t.Fatalf("dial 1: %v", err)
	}
	var cookie *http.Cookie
	for _, c := range resp1.Cookies() {
		if c.Name == "peerid" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected peerid cookie on first connect")
	}
	conn1.ReadMessage() // peers
	_, nameMsg1, err := conn1.ReadMessage()
	if err != nil {
		t.Fatalf("read display-name 1: %v", err)
	}
	conn1.Close()

	header := http.Header{}
	header.Add("Cookie", fmt.Sprintf("peerid=%s", cookie.Value))
	conn2, resp2, err := websocket.DefaultDialer.Dial(wsURL(srv.URL, "/server/webrtc"), header)
	if err != nil {
		t.Fatalf("dial 2: %v", err)
	}
	defer conn2.Close()

	for _, c := range resp2.Cookies() {
		if c.Name == "peerid" {
			t.Fatal("expected no Set-Cookie on reconnect with an existing cookie")
		}
	}

	conn2.ReadMessage() // peers
	_, nameMsg2, err := conn2.ReadMessage()
	if err != nil {
		t.Fatalf("read display-name 2: %v", err)
	}
	if string(nameMsg1) != string(nameMsg2) {
		t.Fatalf("expected identical display-name across reconnect, got %s vs %s", nameMsg1, nameMsg2)
	}
}

// TestEndToEndUnknownRecipientDropped covers spec.md's S5 scenario.
func TestEndToEndUnknownRecipientDropped(t *testing.T) {
	srv := startTestServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv.URL, "/server/webrtc"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.ReadMessage()
	conn.ReadMessage()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"signal","to":"ZZZ"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Confirm the session is still alive by sending a pong and expecting no error.
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"pong"}`)); err != nil {
		t.Fatalf("session appears closed after unknown-recipient frame: %v", err)
	}
}
