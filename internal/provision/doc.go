// Package provision builds and executes the provisioning tool command line.
//
// The wizard never partitions disks or writes images itself; it assembles
// one command for the external tool and inspects its exit code. The only
// output it ever parses is the "Slot X" pattern in `status` text, used to
// offer slot choices for update/repair/switch flows.
package provision
