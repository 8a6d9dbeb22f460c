// Package discovery finds word finder generation services on the local
// network with mDNS, and lets a service advertise itself.
//
// Services register as "_wordfinder._tcp" in the "local." domain with a
// "path" TXT record naming the generation route. A client that does not know
// its endpoint can browse for one:
//
//	endpoint, err := discovery.FindEndpoint(ctx, 3*time.Second)
//	if err != nil {
//	    return err
//	}
//	client := generator.NewClient(endpoint)
//
// The stub service in cmd/wordfinder-stub advertises itself with Advertise
// when started with --advertise.
//
// # Network Requirements
//
//   - Requires multicast support on the network interface
//   - Client and service must be on the same network segment
//   - Firewall must allow mDNS (UDP port 5353)
package discovery
