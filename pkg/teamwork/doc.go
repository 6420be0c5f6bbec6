// Package teamwork holds the record types decoded from the Teamwork API and the
// client used to reach it.
//
// records_gen.go is produced from the payloads in samples/ and must not be
// edited by hand. After changing a sample, regenerate it with:
//
//	go generate ./pkg/teamwork
package teamwork

//go:generate go run ../../cmd/teamwork-proxy generate -samples samples -out records_gen.go -package teamwork
