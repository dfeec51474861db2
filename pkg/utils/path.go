package utils

import "github.com/gosimple/slug"

// TokenKey derives a storage key for an account's OAuth token. Slugging the
// address keeps the key safe for file names and object paths.
func TokenKey(provider, email string) string {
	return provider + "_" + slug.Make(email)
}
