package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShowAndAutoDismiss(t *testing.T) {
	n := NewNotifier(80 * time.Millisecond)
	defer n.Close()

	n.Show("Added Supreme Pizza to cart!")
	require.Equal(t, "Added Supreme Pizza to cart!", n.Current())

	require.Eventually(t, func() bool { return n.Current() == "" },
		time.Second, 10*time.Millisecond)
}

func TestNewerToastSupersedesPendingDismiss(t *testing.T) {
	n := NewNotifier(100 * time.Millisecond)
	defer n.Close()

	n.Show("first")
	time.Sleep(60 * time.Millisecond)
	n.Show("second")

	// past the first toast's original deadline; its timer must not have
	// cleared the newer message
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, "second", n.Current())

	require.Eventually(t, func() bool { return n.Current() == "" },
		time.Second, 10*time.Millisecond)
}

func TestManualDismiss(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Close()

	n.Show("see ya")
	n.Dismiss()
	require.Equal(t, "", n.Current())

	// dismissing nothing is fine
	n.Dismiss()
	require.Equal(t, "", n.Current())
}
