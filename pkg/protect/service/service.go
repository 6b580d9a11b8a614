// Package service exposes the operations of the SDK: governance rules
// retrieval, whitelisted address and asset listings, and request approval.
// Every record that carries signed data is verified before it is returned;
// the services wire the REST transport to the verification helpers.
package service

import (
	"crypto/ecdsa"

	"github.com/sirupsen/logrus"

	"github.com/taurushq-io/protect-sdk-go/pkg/protect/helper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/mapper"
	"github.com/taurushq-io/protect-sdk-go/pkg/protect/model"
)

var log = logrus.WithField("prefix", "protect/service")

// VerificationConfig holds the trust anchors shared by the verifying
// services.
type VerificationConfig struct {
	// SuperAdminKeys are the public keys trusted to sign rules containers.
	SuperAdminKeys []*ecdsa.PublicKey
	// MinValidSignatures is the number of distinct SuperAdmin signatures a
	// rules container needs. Zero disables container signature checks.
	MinValidSignatures int
}

// containerCheck is the verification outcome of one normalized rules
// container. Failures are kept so they surface against the envelopes that
// reference the container.
type containerCheck struct {
	container *model.DecodedRulesContainer
	err       error
}

// verifyNormalizedContainers verifies each distinct rules container of a
// normalized list reply once and indexes the outcome by reply hash.
func verifyNormalizedContainers(containers []*model.HashRulesContainer, superAdminKeys []*ecdsa.PublicKey, minValidSignatures int) map[string]*containerCheck {
	byHash := make(map[string]*containerCheck)
	byContent := make(map[string]*containerCheck)
	for _, container := range containers {
		if container == nil || container.Hash == "" || container.RulesContainer == "" {
			continue
		}
		check, seen := byContent[container.RulesContainer]
		if !seen {
			decoded, err := helper.VerifyAndDecodeRulesContainer(
				container.RulesContainer,
				container.RulesSignatures,
				superAdminKeys,
				minValidSignatures,
				mapper.RulesContainerFromBase64,
				mapper.UserSignaturesFromBase64,
			)
			check = &containerCheck{container: decoded, err: err}
			if err != nil {
				log.WithError(err).WithField("hash", container.Hash).Warn("Rules container of list reply failed verification")
			}
			byContent[container.RulesContainer] = check
		}
		byHash[container.Hash] = check
	}
	return byHash
}

// paginationFor derives the reply position from the requested window and
// the reported total.
func paginationFor(limit, offset, totalItems int64) *model.Pagination {
	return &model.Pagination{
		TotalItems: totalItems,
		Limit:      limit,
		Offset:     offset,
		HasMore:    offset+limit < totalItems,
	}
}
