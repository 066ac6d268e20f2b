// Toolrec - Surgical Tool Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/toolrec

/*
Package supervisor runs the long-lived services of toolrec under a suture v4
supervisor tree.

	RootSupervisor ("toolrec")
	├── DataSupervisor ("data-layer")
	│   └── RefreshService (scheduled and on-demand engine rebuilds)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A refresh loop that keeps failing is restarted with backoff inside the data
layer and never takes the API layer down. The last good engine keeps serving.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	if err != nil {
	    return err
	}
	tree.AddDataService(refresh)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Supervisor events are logged through sutureslog, which the logging package
bridges to zerolog.
*/
package supervisor
