/*
Package ddns keeps DNS records at a hosting provider pointed at the addresses of local network interfaces.

The heart of the package is [Reconcile],
which compares the records a [Backend] holds for its zone with a list of [DesiredRecord] values,
resolves each desired record to an address from a [Snapshot],
and creates or updates records until the two agree.
Records that are not desired are never deleted.

Most programs will use an [Agent] instead, constructed with [New],
which builds the snapshot from [LocalAddresses] and an optional external [Resolver]
and then reconciles any number of zones in turn.
Backends for DigitalOcean, Cloudflare and Route 53 live in the provider directory.
*/
package ddns
