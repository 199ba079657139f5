// This file is part of dmd5620.
//
// dmd5620 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dmd5620 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dmd5620.  If not, see <https://www.gnu.org/licenses/>.

package notifications_test

import (
	"testing"

	"github.com/dmdterm/dmd5620/notifications"
	"github.com/dmdterm/dmd5620/test"
)

func TestNotifyFunc(t *testing.T) {
	var received []notifications.Notice

	var n notifications.Notify = notifications.NotifyFunc(func(notice notifications.Notice) error {
		received = append(received, notice)
		return nil
	})

	test.ExpectSuccess(t, n.Notify(notifications.NotifyBell))
	test.ExpectSuccess(t, n.Notify(notifications.NotifyHalt))
	test.DemandEquality(t, len(received), 2)
	test.ExpectEquality(t, received[0], notifications.NotifyBell)
	test.ExpectEquality(t, received[1], notifications.NotifyHalt)

	test.ExpectSuccess(t, notifications.Discard.Notify(notifications.NotifyBell))
}
