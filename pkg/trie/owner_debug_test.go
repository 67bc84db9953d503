//go:build debug

package trie_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/juditrie/internal/debug"
	"github.com/flier/juditrie/pkg/trie"
)

func TestOwnerCheckDiagnostic(t *testing.T) {
	defer debug.WithTesting(t)()

	Convey("Given a trie opened with WithOwnerCheck(true)", t, func() {
		tr, err := trie.Open(16, trie.WithOwnerCheck(true))
		So(err, ShouldBeNil)
		defer tr.Close()

		tr.Cell([]byte("first"))

		Convey("When a second goroutine drives it without synchronization", func() {
			tripped := false
			done := make(chan struct{})

			go func() {
				defer close(done)
				defer func() {
					if recover() != nil {
						tripped = true
					}
				}()
				tr.Cell([]byte("second"))
			}()
			<-done

			Convey("Then it trips the goroutine-ownership assertion", func() {
				So(tripped, ShouldBeTrue)
			})
		})
	})
}
