// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee


/*
Package supervisor runs the long-lived parts of marquee under a suture v4
supervisor tree.

The tree has two layers so a failing store probe never takes the HTTP
listener down with it:

	RootSupervisor ("marquee")
	├── DataSupervisor ("data-layer")
	│   └── StoreMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure threshold, decay and
backoff. Supervisor events are logged through sutureslog, which main wires to
the zerolog-backed slog handler from internal/logging.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreMonitorService(store, "postgres", 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 15*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Service implementations live in the services subpackage.
*/
package supervisor
