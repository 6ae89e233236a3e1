// Package widgets provides the interactive parts of the landing page.
//
// Counter is the animated badge: it pairs a visibility.Detector with an
// animation.CountUp so the number counts up once, the first time the badge
// is at least half visible. NavMenu is the collapsible section menu and
// ContactForm collects the trial class request.
//
// Widgets hold state only. Drawing is left to the host, which reads
// Label, IsOpen or Display on each frame.
package widgets
