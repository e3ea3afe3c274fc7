// Package ecs publishes folio page events into a Donburi world.
//
// Attach a sink with Page.SetEventSink and subscribe to PageEventType in
// your systems; events are queued until events.ProcessAllEvents runs.
//
// TrackPageState keeps a PageState component current for systems that
// prefer querying state over handling events.
package ecs
