// Package wizard sequences the provisioning flows.
//
// The App owns the main menu and drives each named flow - Install, Repair,
// Update, Switch Slot, Sync Slots, Reboot - as a strictly linear pipeline of
// steps. There is no backward navigation between steps: cancelling any step
// aborts the whole flow, discards its partially built request, and returns
// to the main menu. A request is executed only once every required field is
// populated.
package wizard
