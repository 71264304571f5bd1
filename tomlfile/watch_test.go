package tomlfile

import (
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestWatchDeliversOnOverrideChange(t *testing.T) {
	convey.Convey("a write to the override file triggers a re-merge", t, func() {
		dir := t.TempDir()
		base := writeTemp(t, dir, "base.toml", "port = 80\n")
		override := writeTemp(t, dir, "override.toml", "port = 8080\n")

		w, err := Watch(base, override, true)
		convey.So(err, convey.ShouldBeNil)
		defer w.Close()

		// Drain the nothing-has-happened-yet window; the watcher only
		// reacts to events, it doesn't merge eagerly on Watch.
		time.Sleep(20 * time.Millisecond)

		convey.So(os.WriteFile(override, []byte("port = 9090\n"), 0o644), convey.ShouldBeNil)

		// os.WriteFile truncates the file before writing it, and the watcher
		// re-merges on each write event, so an update merged from the
		// emptied override (port 80, from the base) may arrive first.
		timeout := time.After(2 * time.Second)
		for {
			select {
			case result := <-w.Updates():
				convey.So(result.Err, convey.ShouldBeNil)
				port, ok := result.Table.GetAsInt("port")
				convey.So(ok, convey.ShouldBeTrue)
				if port == 80 {
					continue
				}
				convey.So(port, convey.ShouldEqual, int64(9090))
				return
			case <-timeout:
				t.Fatal("timed out waiting for a watch update")
			}
		}
	})
}

func TestWatchCloseStopsDelivery(t *testing.T) {
	convey.Convey("Close stops the loop and closes Updates", t, func() {
		dir := t.TempDir()
		base := writeTemp(t, dir, "base.toml", "x = 1\n")
		override := writeTemp(t, dir, "override.toml", "y = 2\n")

		w, err := Watch(base, override, true)
		convey.So(err, convey.ShouldBeNil)
		convey.So(w.Close(), convey.ShouldBeNil)

		_, open := <-w.Updates()
		convey.So(open, convey.ShouldBeFalse)
	})
}
