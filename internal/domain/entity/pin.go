package entity

// DefaultPinName names an upload when the client gives none.
const DefaultPinName = "clock-nft"

// PinUpload is a file submitted for pinning.
type PinUpload struct {
	Name        string
	ContentType string
	Content     []byte
}

// PinnedFile is the content address and public URL of a pinned upload.
type PinnedFile struct {
	Hash string `json:"hash"`
	URL  string `json:"ipfsUrl"`
}
