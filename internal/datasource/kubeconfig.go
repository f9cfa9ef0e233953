package datasource

import (
	"fmt"

	"github.com/yourusername/kubedash/internal/model"
	"go.uber.org/zap"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// LoadKubeConfig builds the REST config for the cluster and resolves the
// active kubeconfig context. A kubeconfig without a usable current context
// still yields a nil KubeContext rather than an error: the dashboard treats
// a missing context as a displayable state.
func LoadKubeConfig(kubeconfig, contextOverride string, logger *zap.Logger) (*rest.Config, *model.KubeContext, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfig != "" {
		loadingRules.ExplicitPath = kubeconfig
	}

	overrides := &clientcmd.ConfigOverrides{CurrentContext: contextOverride}
	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides)

	restConfig, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build client config: %w", err)
	}

	raw, err := clientConfig.RawConfig()
	if err != nil {
		logger.Warn("Failed to read raw kubeconfig, context info unavailable", zap.Error(err))
		return restConfig, nil, nil
	}

	name := raw.CurrentContext
	if contextOverride != "" {
		name = contextOverride
	}

	kubeCtx, ok := raw.Contexts[name]
	if !ok {
		logger.Warn("Active context not found in kubeconfig", zap.String("context", name))
		return restConfig, nil, nil
	}

	logger.Info("Resolved active context",
		zap.String("context", name),
		zap.String("cluster", kubeCtx.Cluster),
		zap.String("user", kubeCtx.AuthInfo),
	)

	return restConfig, &model.KubeContext{
		Name:    name,
		Cluster: kubeCtx.Cluster,
		User:    kubeCtx.AuthInfo,
	}, nil
}
