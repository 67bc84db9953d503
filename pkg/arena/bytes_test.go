package arena_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/juditrie/pkg/arena"
)

func TestBytes(t *testing.T) {
	Convey("Given a Bytes arena with a small segment size", t, func() {
		b := arena.NewBytes(16)

		Convey("When allocating fewer bytes than the segment size", func() {
			buf := b.Alloc(5)

			Convey("Then it returns a zeroed slice of the requested length", func() {
				So(len(buf), ShouldEqual, 5)
				for _, c := range buf {
					So(c, ShouldEqual, 0)
				}
			})
		})

		Convey("When allocating zero bytes", func() {
			So(b.Alloc(0), ShouldBeNil)
		})

		Convey("When allocations overflow the current segment", func() {
			first := b.Alloc(10)
			second := b.Alloc(10)

			Convey("Then writes to the first allocation are not clobbered", func() {
				for i := range first {
					first[i] = 0xAB
				}
				for i := range second {
					So(second[i], ShouldEqual, 0)
				}
				for _, c := range first {
					So(c, ShouldEqual, 0xAB)
				}
			})
		})

		Convey("When a single allocation exceeds the segment size", func() {
			big := b.Alloc(64)

			Convey("Then it still returns a correctly sized zeroed buffer", func() {
				So(len(big), ShouldEqual, 64)
			})
		})
	})
}
