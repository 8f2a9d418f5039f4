// Package network decides whether the installer needs WiFi setup and drives
// the connection backends when it does.
//
// The resolver classifies the machine (laptop vs. desktop), detects existing
// wired connectivity, probes for the available backends - iwd, NetworkManager
// and wpa_supplicant, in that fixed priority order - and performs scans and
// connection attempts through them. Desktops and wired laptops skip WiFi
// setup entirely. A system with wireless hardware but no usable backend is a
// hard stop for the install flow; a failed connection attempt is not, and
// returns the operator to the network list.
//
// All probes shell out to the system tools with bounded timeouts so a hung
// utility cannot freeze the wizard. The interactive parts of the resolver
// (scan-or-manual choice, passphrase entry) live in the wizard package; this
// package is UI-free.
package network
