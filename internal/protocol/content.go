package protocol

// Content types understood by MCP clients.
const (
	ContentTypeText         = "text"
	ContentTypeImage        = "image"
	ContentTypeAudio        = "audio"
	ContentTypeResourceLink = "resource_link"
	ContentTypeResource     = "resource"
)

// Content is a single item in a tool result. Type selects which fields are
// populated: text items carry Text; image and audio items carry base64 Data
// plus MimeType; resource links carry URI and Name; embedded resources carry
// Resource.
type Content struct {
	Type     string            `json:"type"`
	Text     string            `json:"text,omitempty"`
	Data     string            `json:"data,omitempty"`
	MimeType string            `json:"mimeType,omitempty"`
	URI      string            `json:"uri,omitempty"`
	Name     string            `json:"name,omitempty"`
	Resource *ResourceContents `json:"resource,omitempty"`
}

// ResourceContents is the body of an embedded resource content item. Text
// and Blob are mutually exclusive; Blob is base64.
type ResourceContents struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"`
}

// NewTextContent returns a text content item.
func NewTextContent(text string) Content {
	return Content{Type: ContentTypeText, Text: text}
}

// NewImageContent returns an image content item with base64 data.
func NewImageContent(data, mimeType string) Content {
	return Content{Type: ContentTypeImage, Data: data, MimeType: mimeType}
}

// NewAudioContent returns an audio content item with base64 data.
func NewAudioContent(data, mimeType string) Content {
	return Content{Type: ContentTypeAudio, Data: data, MimeType: mimeType}
}

// NewResourceLink returns a content item referencing a resource by URI
// without embedding its contents.
func NewResourceLink(uri, name, mimeType string) Content {
	return Content{Type: ContentTypeResourceLink, URI: uri, Name: name, MimeType: mimeType}
}

// NewEmbeddedResource returns a content item carrying full resource contents.
func NewEmbeddedResource(resource *ResourceContents) Content {
	return Content{Type: ContentTypeResource, Resource: resource}
}
