package models

// ContentType defines the kinds of items a user can save
type ContentType string

const (
	ContentTypeDocument ContentType = "document"
	ContentTypeTweet    ContentType = "tweet"
	ContentTypeYouTube  ContentType = "youtube"
	ContentTypeLink     ContentType = "link"
)

// ContentTypes lists every accepted ContentType in display order
var ContentTypes = []ContentType{
	ContentTypeDocument,
	ContentTypeTweet,
	ContentTypeYouTube,
	ContentTypeLink,
}

// IsValid checks if the ContentType is valid
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeDocument, ContentTypeTweet, ContentTypeYouTube, ContentTypeLink:
		return true
	}
	return false
}

// RequiresLink reports whether items of this type must carry a URL
func (t ContentType) RequiresLink() bool {
	return t != ContentTypeDocument
}

// RequiresBody reports whether items of this type must carry a text body
func (t ContentType) RequiresBody() bool {
	return t == ContentTypeDocument
}
