/*
Package server implements msgpack IPC for the classification engine.

The server speaks binary msgpack over stdin/stdout so a form host (editor
plugin, Electron shell, inventory frontend) can drive the engine from
another process. Messages are processed synchronously; each request carries
an ID echoed in the response, plus a command discriminator.

# IPC

Rank a partial query while the operator types:

	{"id": "req_001", "cmd": "complete", "q": "Lat", "l": 8}

The server responds with the ranked candidate list:

	{"id": "req_001", "s": [{"t": "Latitude", "r": 1}, {"t": "Latitude 5420", "r": 2}], "c": 2, "t": 87}

Classify a finalized model string:

	{"id": "req_002", "cmd": "classify", "q": "OptiPlex 7090 Tower"}
	{"id": "req_002", "found": true, "mfr": "Dell", "cat": "systems", "type": "Tower", "score": 5}

Normalize a pasted inventory record against the current draft:

	{"id": "req_003", "cmd": "import", "rec": {"Model Number": "Latitude 5420"}, "mfr": "", "pn": ""}
	{"id": "req_003", "fields": {"modelNumber": "Latitude 5420", "manufacturer": "Dell", ...}, "matched": true}

A host that wants the debounced live-typing behavior instead of one-shot
completes drives the stateful session commands. "input" records the field
text on every keystroke; when the debounce elapses the server pushes an
unsolicited session event carrying the opened candidate list:

	{"id": "req_004", "cmd": "input", "q": "Lat"}
	{"id": "req_004", "ev": "session", "state": "pending", "q": "Lat"}
	{"ev": "session", "state": "open", "q": "Lat", "cands": ["Latitude", ...], "active": 0}

"navigate" moves the highlight (dir +1/-1, wrapping), "accept" returns the
highlighted text and closes the list, "dismiss" just closes it.

A classification that finds nothing is not an error: the response carries
found=false and the host leaves its draft untouched. Errors are reserved
for malformed requests and rejected imports.
*/
package server

// Request is the incoming message envelope. Cmd selects the operation:
// "complete", "classify", "import", "input", "navigate", "accept",
// "dismiss" or "health".
type Request struct {
	ID    string `msgpack:"id"`
	Cmd   string `msgpack:"cmd"`
	Query string `msgpack:"q,omitempty"`
	Limit int    `msgpack:"l,omitempty"`

	// Dir moves the session highlight: +1 next, -1 previous.
	Dir int `msgpack:"dir,omitempty"`

	// import fields: the raw record plus the draft values the derive
	// rules consult.
	Record       map[string]any `msgpack:"rec,omitempty"`
	Manufacturer string         `msgpack:"mfr,omitempty"`
	PartNumber   string         `msgpack:"pn,omitempty"`
}

// Suggestion is one ranked candidate in a complete response.
type Suggestion struct {
	Text string `msgpack:"t"`
	Rank uint16 `msgpack:"r"`
}

// CompleteResponse answers a complete request.
type CompleteResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"` // microseconds
}

// ClassifyResponse answers a classify request. Found=false means no
// keyword matched; the remaining fields are then empty.
type ClassifyResponse struct {
	ID           string `msgpack:"id"`
	Found        bool   `msgpack:"found"`
	Manufacturer string `msgpack:"mfr,omitempty"`
	Category     string `msgpack:"cat,omitempty"`
	Type         string `msgpack:"type,omitempty"`
	Score        int    `msgpack:"score,omitempty"`
}

// ImportResponse answers an import request with the proposed field
// updates.
type ImportResponse struct {
	ID         string            `msgpack:"id"`
	Fields     map[string]string `msgpack:"fields"`
	MatchedAny bool              `msgpack:"matched"`
}

// SessionResponse reports session state. Sent synchronously (with the
// request ID) as the ack for input/navigate/dismiss, and asynchronously
// (without an ID) when a debounce timer opens or empties the list.
type SessionResponse struct {
	ID         string   `msgpack:"id,omitempty"`
	Event      string   `msgpack:"ev"` // always "session"
	State      string   `msgpack:"state"`
	Query      string   `msgpack:"q,omitempty"`
	Candidates []string `msgpack:"cands,omitempty"`
	Active     int      `msgpack:"active"`
}

// AcceptResponse answers an accept request. OK=false means the session had
// no open candidate list.
type AcceptResponse struct {
	ID   string `msgpack:"id"`
	Text string `msgpack:"text,omitempty"`
	OK   bool   `msgpack:"ok"`
}

// StatusResponse answers health checks and signals readiness at startup.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a malformed request or a rejected import.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
