package bgg

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// rootName returns the local name of the document's root element. The
// upstream signals its response shape through the root: "items" carries
// data, "message" means the request was accepted but deferred, "errors"
// carries a failure.
func rootName(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name.Local, nil
		}
	}
}

func upstreamMessage(data []byte) error {
	var doc errorDoc
	if err := xml.Unmarshal(data, &doc); err == nil && len(doc.Errors) > 0 {
		return &UpstreamError{Message: strings.TrimSpace(doc.Errors[0].Message)}
	}
	return &UpstreamError{Message: "unspecified upstream error"}
}

// ParseThings decodes a thing endpoint response. An empty item list is a
// valid response meaning no matching things exist.
func ParseThings(data []byte) ([]ThingItem, error) {
	root, err := rootName(data)
	if err != nil {
		return nil, &ParseError{Shape: "unknown", Cause: err}
	}

	switch root {
	case "items":
		var doc thingDoc
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Shape: root, Cause: err}
		}
		return doc.Items, nil
	case "message":
		return nil, ErrDeferred
	case "errors":
		return nil, upstreamMessage(data)
	default:
		return nil, &ParseError{Shape: root}
	}
}

// ParseCollection decodes a collection endpoint response. A "message"
// document means the collection request was queued upstream and is
// reported as ErrDeferred, distinct from both data and failure.
func ParseCollection(data []byte) (*Collection, error) {
	root, err := rootName(data)
	if err != nil {
		return nil, &ParseError{Shape: "unknown", Cause: err}
	}

	switch root {
	case "items":
		var doc Collection
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Shape: root, Cause: err}
		}
		return &doc, nil
	case "message":
		return nil, ErrDeferred
	case "errors":
		return nil, upstreamMessage(data)
	default:
		return nil, &ParseError{Shape: root}
	}
}

// ParsePlays decodes a plays endpoint response.
func ParsePlays(data []byte) (*Plays, error) {
	root, err := rootName(data)
	if err != nil {
		return nil, &ParseError{Shape: "unknown", Cause: err}
	}

	switch root {
	case "plays":
		var doc Plays
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Shape: root, Cause: err}
		}
		return &doc, nil
	case "message":
		return nil, ErrDeferred
	case "errors":
		return nil, upstreamMessage(data)
	default:
		return nil, &ParseError{Shape: root}
	}
}

// ParseHotList decodes a hot-list endpoint response.
func ParseHotList(data []byte) ([]HotItem, error) {
	root, err := rootName(data)
	if err != nil {
		return nil, &ParseError{Shape: "unknown", Cause: err}
	}

	switch root {
	case "items":
		var doc hotDoc
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, &ParseError{Shape: root, Cause: err}
		}
		return doc.Items, nil
	case "message":
		return nil, ErrDeferred
	case "errors":
		return nil, upstreamMessage(data)
	default:
		return nil, &ParseError{Shape: root}
	}
}
