// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

/*
Package supervisor provides process supervision for Pickrec using suture v4.

The tree separates the HTTP surface from background catalog maintenance so
that a misbehaving reload cannot take the API down:

	RootSupervisor ("pickrec")
	├── DataSupervisor ("data-layer")
	│   └── ReloadService (if RECOMMEND_RELOAD_INTERVAL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, normally backed by logging.NewSlogLogger so they
share the zerolog output of the rest of the process.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

# Configuration

TreeConfig mirrors suture.Spec. Zero fields take the values from
DefaultTreeConfig, which match suture's own defaults.

# See Also

  - internal/supervisor/services: service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
